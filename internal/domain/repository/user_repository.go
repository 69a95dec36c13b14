package repository

import (
	"ayursutra/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	CreateBatch(db *gorm.DB, users []entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByUsernameAndRole(db *gorm.DB, username string, roleID int) (*entity.User, error)
	FindByRole(db *gorm.DB, roleID int) ([]entity.User, error)
	Count(db *gorm.DB) (int64, error)
}
