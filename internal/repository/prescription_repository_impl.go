package repository

import (
	"errors"

	"ayursutra/internal/domain/entity"
	domainRepo "ayursutra/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Patient").Preload("Doctor").Preload("Therapist").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB, filter entity.PrescriptionFilter) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	query := db.Preload("Patient").Preload("Doctor").Preload("Therapist")
	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.TherapistID != nil {
		query = query.Where("therapist_id = ?", *filter.TherapistID)
	}
	err := query.Order("created_at DESC").Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// TransitionFromPending atomically decides a prescription ONLY if it is still
// pending. Affected rows 0 means the row is absent or already decided.
func (r *prescriptionRepository) TransitionFromPending(db *gorm.DB, id uuid.UUID, status entity.PrescriptionStatus) (int64, error) {
	result := db.Model(&entity.Prescription{}).
		Where("id = ? AND status = ?", id, entity.PrescriptionStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
