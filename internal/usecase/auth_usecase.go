package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ayursutra/internal/converter"
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"
	"ayursutra/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPatientNotRegistered = errors.New("patient not found, please register first")
	ErrPasswordRequired     = errors.New("username and password are required")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, role entity.Role, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterPatientResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	CurrentUser(ctx context.Context, principal entity.Principal) (*dto.TokenUser, error)
	ListTherapists(ctx context.Context) ([]dto.TherapistResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Login resolves a presented credential to a role-tagged principal and issues
// a token pair. Two credential shapes exist: staff roles authenticate with
// username+password against the users table; patients present only their
// registered email, looked up directly in the patient registry.
func (u *authUsecase) Login(ctx context.Context, role entity.Role, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	switch role {
	case entity.RolePatient:
		return u.loginPatient(ctx, req)
	case entity.RoleAdmin, entity.RoleDoctor, entity.RoleTherapist:
		return u.loginStaff(ctx, role, req)
	}
	return nil, ErrInvalidCredentials
}

func (u *authUsecase) loginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotRegistered
	}

	// The patient's principal is synthesized from the registry record: id is
	// the patient row, username the email. The display name goes out in the
	// response user object.
	principal := entity.Principal{ID: patient.ID, Username: patient.Email, Role: entity.RolePatient}
	return u.issueTokens(ctx, principal, patient.Name)
}

func (u *authUsecase) loginStaff(ctx context.Context, role entity.Role, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := u.userRepo.FindByUsernameAndRole(u.db.WithContext(ctx), req.Username, role.ID())
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	principal := entity.Principal{ID: user.ID, Username: user.Username, Role: role}
	return u.issueTokens(ctx, principal, user.Username)
}

func (u *authUsecase) issueTokens(ctx context.Context, principal entity.Principal, displayName string) (*dto.LoginResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(principal)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(principal)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", principal.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", principal.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User: dto.TokenUser{
			ID:       principal.ID,
			Username: displayName,
			Role:     string(principal.Role),
		},
	}, nil
}

// RegisterPatient is the public self-registration path. Email uniqueness is
// enforced by the registry's unique index; the lookup beforehand only gives
// the caller a clean error before hitting the constraint.
func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterPatientResponse, error) {
	existing, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing patient: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	patient := &entity.Patient{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Age:   req.Age,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return &dto.RegisterPatientResponse{
		ID:      patient.ID,
		Message: "Patient registered successfully",
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
		fmt.Sprintf("refresh_token:*:%s", refreshTokenID),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	principal, err := claims.Principal()
	if err != nil {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", principal.ID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: old refresh token is single-use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	resp, err := u.issueTokens(ctx, principal, principal.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// CurrentUser echoes the authenticated principal, resolving the display name
// from the backing record.
func (u *authUsecase) CurrentUser(ctx context.Context, principal entity.Principal) (*dto.TokenUser, error) {
	displayName := principal.Username

	switch principal.Role {
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), principal.ID)
		if err != nil {
			u.log.Warnf("Failed to find patient %s: %+v", principal.ID, err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrUserNotFound
		}
		displayName = patient.Name
	case entity.RoleAdmin, entity.RoleDoctor, entity.RoleTherapist:
		user, err := u.userRepo.FindByID(u.db.WithContext(ctx), principal.ID)
		if err != nil {
			u.log.Warnf("Failed to find user %s: %+v", principal.ID, err)
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		displayName = user.Username
	}

	return &dto.TokenUser{
		ID:       principal.ID,
		Username: displayName,
		Role:     string(principal.Role),
	}, nil
}

// ListTherapists lists therapist accounts for the booking and referral
// pickers.
func (u *authUsecase) ListTherapists(ctx context.Context) ([]dto.TherapistResponse, error) {
	therapists, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleIDTherapist)
	if err != nil {
		u.log.Warnf("Failed to list therapists: %+v", err)
		return nil, err
	}
	return converter.TherapistsToResponses(therapists), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
