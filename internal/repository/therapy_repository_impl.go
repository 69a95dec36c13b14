package repository

import (
	"errors"

	"ayursutra/internal/domain/entity"
	domainRepo "ayursutra/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type therapyRepository struct{}

func NewTherapyRepository() domainRepo.TherapyRepository {
	return &therapyRepository{}
}

func (r *therapyRepository) CreateBatch(db *gorm.DB, therapies []entity.Therapy) error {
	return db.Create(&therapies).Error
}

func (r *therapyRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Therapy, error) {
	var therapy entity.Therapy
	err := db.Where("id = ?", id).First(&therapy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapy, nil
}

func (r *therapyRepository) FindAll(db *gorm.DB) ([]entity.Therapy, error) {
	var therapies []entity.Therapy
	err := db.Order("name ASC").Find(&therapies).Error
	if err != nil {
		return nil, err
	}
	return therapies, nil
}

func (r *therapyRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Therapy{}).Count(&count).Error
	return count, err
}
