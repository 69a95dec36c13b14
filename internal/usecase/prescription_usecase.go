package usecase

import (
	"context"
	"errors"
	"time"

	"ayursutra/internal/converter"
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound    = errors.New("prescription not found")
	ErrPrescriptionFinalized   = errors.New("prescription is already accepted or rejected")
	ErrPrescriptionNotAssigned = errors.New("only the assigned therapist may decide this prescription")
)

type PrescriptionUsecase interface {
	List(ctx context.Context, principal entity.Principal) (*dto.PrescriptionListResponse, error)
	Create(ctx context.Context, principal entity.Principal, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Decide(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	revenueRepo      repository.RevenueRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	revenueRepo repository.RevenueRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		revenueRepo:      revenueRepo,
	}
}

// List returns prescriptions visible to the principal, newest first.
func (u *prescriptionUsecase) List(ctx context.Context, principal entity.Principal) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx), principal.PrescriptionFilter())
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// Create writes a referral on behalf of the calling doctor and recognizes
// the consultation fee in the same transaction. Unlike appointments, revenue
// is recorded at creation, not at acceptance. A missing patient aborts the
// whole operation, so a prescription never exists without its paired ledger
// row.
func (u *prescriptionUsecase) Create(ctx context.Context, principal entity.Principal, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	therapist, err := u.userRepo.FindByUsernameAndRole(u.db.WithContext(ctx), req.TherapistName, entity.RoleIDTherapist)
	if err != nil {
		u.log.Warnf("Failed to find therapist %q: %+v", req.TherapistName, err)
		return nil, err
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrMissingReference
	}

	patientID := patient.ID
	prescription := &entity.Prescription{
		PatientID:           &patientID,
		DoctorID:            principal.ID,
		TherapistID:         therapist.ID,
		TherapyIDs:          req.TherapyIDs,
		PrescriptionText:    req.PrescriptionText,
		DurationDays:        req.DurationDays,
		Frequency:           req.Frequency,
		SpecialInstructions: req.SpecialInstructions,
		Status:              entity.PrescriptionStatusPending,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		if isForeignKeyError(err, "") {
			return nil, ErrMissingReference
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	entry := doctorRevenueFor(prescription, patient, time.Now().UTC())
	if err := u.revenueRepo.CreateDoctorEntry(tx, entry); err != nil {
		u.log.Errorf("Failed to append consultation fee for prescription %s: %+v", prescription.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit prescription creation: %+v", err)
		return nil, err
	}

	u.log.Infof("Prescription created: id=%s, doctor=%s, therapist=%s, fee=%s",
		prescription.ID, principal.Username, therapist.Username, entry.ConsultationFee)

	full, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescription.ID)
	if err != nil {
		u.log.Warnf("Failed to reload prescription %s: %+v", prescription.ID, err)
		return nil, err
	}
	if full == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(full), nil
}

// Decide moves a prescription pending -> {accepted, rejected}. Only the
// assigned therapist may decide, both outcomes are terminal, and deciding
// writes no ledger row.
func (u *prescriptionUsecase) Decide(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if err := prescriptionDecisionAllowed(principal, prescription); err != nil {
		return nil, err
	}

	status := entity.PrescriptionStatus(req.Status)
	rows, err := u.prescriptionRepo.TransitionFromPending(u.db.WithContext(ctx), id, status)
	if err != nil {
		u.log.Warnf("Failed to decide prescription %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPrescriptionFinalized
	}

	u.log.Infof("Prescription decided: id=%s, status=%s, therapist=%s", id, status, principal.Username)

	prescription.Status = status
	return converter.PrescriptionToResponse(prescription), nil
}
