// Command seed fills a running database with demo data: fake patients plus a
// spread of scheduled appointments against the seeded therapy catalog and
// therapist accounts. Intended for local development, never production.
package main

import (
	"fmt"
	"time"

	"ayursutra/config"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/infrastructure/database"
	"ayursutra/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	patientCount     = 50
	appointmentCount = 120
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	patients, err := seedPatients(db, patientCount)
	if err != nil {
		logrus.Fatalf("Failed to seed patients: %v", err)
	}

	if err := seedAppointments(db, patients, appointmentCount); err != nil {
		logrus.Fatalf("Failed to seed appointments: %v", err)
	}

	logrus.Info("Demo data seeded")
}

func seedPatients(db *gorm.DB, count int) ([]entity.Patient, error) {
	patientRepo := repository.NewPatientRepository()

	patients := make([]entity.Patient, 0, count)
	for i := 0; i < count; i++ {
		patient := entity.Patient{
			Name:           gofakeit.Name(),
			Age:            gofakeit.Number(18, 85),
			Phone:          gofakeit.Phone(),
			Email:          gofakeit.Email(),
			Address:        gofakeit.Address().Address,
			MedicalHistory: gofakeit.Sentence(8),
		}
		if err := patientRepo.Create(db, &patient); err != nil {
			return nil, fmt.Errorf("create patient %d: %w", i, err)
		}
		patients = append(patients, patient)
	}

	logrus.Infof("Seeded %d patients", len(patients))
	return patients, nil
}

func seedAppointments(db *gorm.DB, patients []entity.Patient, count int) error {
	therapyRepo := repository.NewTherapyRepository()
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	therapies, err := therapyRepo.FindAll(db)
	if err != nil {
		return fmt.Errorf("load therapies: %w", err)
	}
	if len(therapies) == 0 {
		return fmt.Errorf("therapy catalog is empty, start the server once to seed it")
	}

	therapists, err := userRepo.FindByRole(db, entity.RoleTherapist.ID())
	if err != nil {
		return fmt.Errorf("load therapists: %w", err)
	}
	if len(therapists) == 0 {
		return fmt.Errorf("no therapist accounts, start the server once to seed them")
	}

	slots := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

	for i := 0; i < count; i++ {
		patient := patients[gofakeit.Number(0, len(patients)-1)]
		therapy := therapies[gofakeit.Number(0, len(therapies)-1)]
		therapist := therapists[gofakeit.Number(0, len(therapists)-1)]

		appointment := entity.Appointment{
			PatientID:       &patient.ID,
			TherapyID:       therapy.ID,
			TherapistID:     therapist.ID,
			AppointmentDate: time.Now().UTC().AddDate(0, 0, gofakeit.Number(1, 30)).Truncate(24 * time.Hour),
			AppointmentTime: slots[gofakeit.Number(0, len(slots)-1)],
			Status:          entity.AppointmentStatusScheduled,
			Notes:           gofakeit.Sentence(6),
		}
		if err := appointmentRepo.Create(db, &appointment); err != nil {
			return fmt.Errorf("create appointment %d: %w", i, err)
		}
	}

	logrus.Infof("Seeded %d appointments", count)
	return nil
}
