package repository

import (
	"ayursutra/internal/domain/entity"

	"gorm.io/gorm"
)

// RevenueRepository owns the two append-only ledgers. There are no update or
// delete operations.
type RevenueRepository interface {
	CreateTherapistEntry(db *gorm.DB, entry *entity.TherapistRevenueEntry) error
	CreateDoctorEntry(db *gorm.DB, entry *entity.DoctorRevenueEntry) error
	FindTherapistEntries(db *gorm.DB, filter entity.RevenueFilter) ([]entity.TherapistRevenueEntry, error)
	FindDoctorEntries(db *gorm.DB, filter entity.RevenueFilter) ([]entity.DoctorRevenueEntry, error)
}
