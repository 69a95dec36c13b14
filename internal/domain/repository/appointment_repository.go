package repository

import (
	"ayursutra/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// TransitionFromScheduled conditionally moves an appointment out of the
	// scheduled state. Returns affected rows: 0 means the row was absent or
	// already terminal. A nil notes leaves the stored notes unchanged.
	TransitionFromScheduled(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, notes *string) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
