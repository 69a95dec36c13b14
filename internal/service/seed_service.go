package service

import (
	"context"
	"fmt"
	"time"

	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Cross-instance init lock. Whichever replica grabs it seeds; the rest
	// skip. The TTL covers a crashed seeder.
	seedLockKey = "init:seed:lock"
	seedLockTTL = 2 * time.Minute
)

// SeedService populates reference data on a fresh database: the therapy
// catalog and the default staff accounts. Seeding only runs when the target
// tables are empty, so restarts are no-ops.
type SeedService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	userRepo    repository.UserRepository
	therapyRepo repository.TherapyRepository
}

func NewSeedService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	therapyRepo repository.TherapyRepository,
) *SeedService {
	return &SeedService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		userRepo:    userRepo,
		therapyRepo: therapyRepo,
	}
}

// SeedOnStartup is called once during bootstrap, after migrations. Failure to
// acquire the lock is not an error: another replica is seeding.
func (s *SeedService) SeedOnStartup(ctx context.Context) error {
	acquired, err := s.redisClient.SetNX(ctx, seedLockKey, time.Now().UTC().Format(time.RFC3339), seedLockTTL).Result()
	if err != nil {
		return fmt.Errorf("acquire seed lock: %w", err)
	}
	if !acquired {
		s.log.Info("Seed lock held by another instance, skipping")
		return nil
	}
	defer s.redisClient.Del(ctx, seedLockKey)

	if err := s.seedTherapies(ctx); err != nil {
		return err
	}
	return s.seedUsers(ctx)
}

func (s *SeedService) seedTherapies(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	count, err := s.therapyRepo.Count(db)
	if err != nil {
		return fmt.Errorf("count therapies: %w", err)
	}
	if count > 0 {
		s.log.Debug("Therapy catalog already seeded")
		return nil
	}

	therapies := []entity.Therapy{
		{Name: "Abhyanga", DurationMinutes: 60, Description: "Full body oil massage", Price: decimal.NewFromInt(2000)},
		{Name: "Shirodhara", DurationMinutes: 45, Description: "Oil pouring therapy", Price: decimal.NewFromInt(2500)},
		{Name: "Panchakarma Detox", DurationMinutes: 90, Description: "Complete detox program", Price: decimal.NewFromInt(5000)},
		{Name: "Nasya", DurationMinutes: 30, Description: "Nasal therapy", Price: decimal.NewFromInt(1500)},
		{Name: "Basti", DurationMinutes: 60, Description: "Medicated enema therapy", Price: decimal.NewFromInt(3000)},
	}

	if err := s.therapyRepo.CreateBatch(db, therapies); err != nil {
		return fmt.Errorf("seed therapies: %w", err)
	}

	s.log.Infof("Seeded %d therapies", len(therapies))
	return nil
}

func (s *SeedService) seedUsers(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	count, err := s.userRepo.Count(db)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.log.Debug("Staff accounts already seeded")
		return nil
	}

	defaults := []struct {
		username string
		password string
		role     entity.Role
		fullName string
	}{
		{"admin", "admin123", entity.RoleAdmin, "Administrator"},
		{"doctor", "doctor123", entity.RoleDoctor, "Dr. Sharma"},
		{"therapist", "therapist123", entity.RoleTherapist, "Therapist Kumar"},
		{"therapist2", "therapist123", entity.RoleTherapist, "Therapist Patel"},
		{"therapist3", "therapist123", entity.RoleTherapist, "Therapist Reddy"},
	}

	users := make([]entity.User, 0, len(defaults))
	for _, d := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", d.username, err)
		}
		users = append(users, entity.User{
			RoleID:   d.role.ID(),
			Username: d.username,
			Password: string(hashed),
			FullName: d.fullName,
		})
	}

	if err := s.userRepo.CreateBatch(db, users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	s.log.Infof("Seeded %d staff accounts", len(users))
	return nil
}
