package repository

import (
	"ayursutra/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindAll(db *gorm.DB, filter entity.PrescriptionFilter) ([]entity.Prescription, error)
	// TransitionFromPending conditionally decides a pending prescription.
	// Returns affected rows: 0 means the row was absent or already decided.
	TransitionFromPending(db *gorm.DB, id uuid.UUID, status entity.PrescriptionStatus) (int64, error)
}
