package repository

import (
	"ayursutra/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TherapyRepository interface {
	CreateBatch(db *gorm.DB, therapies []entity.Therapy) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Therapy, error)
	FindAll(db *gorm.DB) ([]entity.Therapy, error)
	Count(db *gorm.DB) (int64, error)
}
