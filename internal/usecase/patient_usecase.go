package usecase

import (
	"context"

	"ayursutra/internal/converter"
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	List(ctx context.Context, principal entity.Principal) (*dto.PatientListResponse, error)
	Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

// List returns the registry. A patient principal sees only their own record.
func (u *patientUsecase) List(ctx context.Context, principal entity.Principal) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	if principal.Role == entity.RolePatient {
		patient, err := u.patientRepo.FindByID(db, principal.ID)
		if err != nil {
			u.log.Warnf("Failed to find patient %s: %+v", principal.ID, err)
			return nil, err
		}
		if patient == nil {
			return &dto.PatientListResponse{Patients: []dto.PatientResponse{}}, nil
		}
		return &dto.PatientListResponse{
			Patients: []dto.PatientResponse{*converter.PatientToResponse(patient)},
			Total:    1,
		}, nil
	}

	patients, err := u.patientRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.PatientResponse, error) {
	if principal.Role == entity.RolePatient && principal.ID != id {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// Create is the clinician entry path; self-registration goes through the
// auth usecase. Email uniqueness is enforced either way.
func (u *patientUsecase) Create(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%s, email=%s", patient.ID, patient.Email)
	return converter.PatientToResponse(patient), nil
}

// Update replaces the mutable fields wholesale. A patient may only update
// their own record.
func (u *patientUsecase) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error) {
	if principal.Role == entity.RolePatient && principal.ID != id {
		return nil, ErrPatientNotFound
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.Name = req.Name
	patient.Age = req.Age
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Address = req.Address
	patient.MedicalHistory = req.MedicalHistory

	if err := u.patientRepo.Update(db, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete hard-deletes the registry record. Appointments and prescriptions
// referencing it are left in place with their reference nulled; reads omit
// the patient fields from then on.
func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.patientRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	u.log.Infof("Patient deleted: id=%s", id)
	return nil
}
