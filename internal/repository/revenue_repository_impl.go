package repository

import (
	"ayursutra/internal/domain/entity"
	domainRepo "ayursutra/internal/domain/repository"

	"gorm.io/gorm"
)

type revenueRepository struct{}

func NewRevenueRepository() domainRepo.RevenueRepository {
	return &revenueRepository{}
}

func (r *revenueRepository) CreateTherapistEntry(db *gorm.DB, entry *entity.TherapistRevenueEntry) error {
	return db.Create(entry).Error
}

func (r *revenueRepository) CreateDoctorEntry(db *gorm.DB, entry *entity.DoctorRevenueEntry) error {
	return db.Create(entry).Error
}

func (r *revenueRepository) FindTherapistEntries(db *gorm.DB, filter entity.RevenueFilter) ([]entity.TherapistRevenueEntry, error) {
	var entries []entity.TherapistRevenueEntry
	query := db.Preload("Therapist")
	if filter.OwnerID != nil {
		query = query.Where("therapist_id = ?", *filter.OwnerID)
	}
	err := query.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *revenueRepository) FindDoctorEntries(db *gorm.DB, filter entity.RevenueFilter) ([]entity.DoctorRevenueEntry, error) {
	var entries []entity.DoctorRevenueEntry
	query := db.Preload("Doctor")
	if filter.OwnerID != nil {
		query = query.Where("doctor_id = ?", *filter.OwnerID)
	}
	err := query.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
