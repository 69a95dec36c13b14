package usecase

import (
	"context"
	"errors"

	"ayursutra/internal/converter"
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentFinalized = errors.New("appointment is already completed or cancelled")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to you")
	ErrTherapistNotFound    = errors.New("therapist not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrTherapyNotFound      = errors.New("therapy not found")
	// ErrMissingReference is the reference-integrity failure of a
	// ledger-triggering operation: the whole operation aborts, nothing is
	// partially committed.
	ErrMissingReference = errors.New("referenced patient or therapy no longer exists")
)

type AppointmentUsecase interface {
	List(ctx context.Context, principal entity.Principal) (*dto.AppointmentListResponse, error)
	Create(ctx context.Context, principal entity.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	therapyRepo     repository.TherapyRepository
	userRepo        repository.UserRepository
	revenueRepo     repository.RevenueRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	therapyRepo repository.TherapyRepository,
	userRepo repository.UserRepository,
	revenueRepo repository.RevenueRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		therapyRepo:     therapyRepo,
		userRepo:        userRepo,
		revenueRepo:     revenueRepo,
	}
}

// List returns appointments visible to the principal. The role filter is
// rebuilt from the principal on every call.
func (u *appointmentUsecase) List(ctx context.Context, principal entity.Principal) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), principal.AppointmentFilter())
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Create books a session. A patient may only book for themselves; the
// therapist display name is resolved to a real therapist account before
// anything is written.
func (u *appointmentUsecase) Create(ctx context.Context, principal entity.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if principal.Role == entity.RolePatient && req.PatientID != principal.ID {
		return nil, ErrAppointmentNotOwned
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	therapy, err := u.therapyRepo.FindByID(db, req.TherapyID)
	if err != nil {
		u.log.Warnf("Failed to find therapy %s: %+v", req.TherapyID, err)
		return nil, err
	}
	if therapy == nil {
		return nil, ErrTherapyNotFound
	}

	therapist, err := u.userRepo.FindByUsernameAndRole(db, req.TherapistName, entity.RoleIDTherapist)
	if err != nil {
		u.log.Warnf("Failed to find therapist %q: %+v", req.TherapistName, err)
		return nil, err
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}

	date, err := parseWireDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	patientID := patient.ID
	appointment := &entity.Appointment{
		PatientID:       &patientID,
		TherapyID:       therapy.ID,
		TherapistID:     therapist.ID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if isForeignKeyError(err, "") {
			// A referenced row was deleted between resolution and insert.
			return nil, ErrMissingReference
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return nil, err
	}
	if full == nil {
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment scheduled: id=%s, patient=%s, therapist=%s, date=%s %s",
		appointment.ID, patient.ID, therapist.Username, req.AppointmentDate, req.AppointmentTime)
	return converter.AppointmentToResponse(full), nil
}

// UpdateStatus drives the appointment state machine:
// scheduled -> {completed, cancelled}, both terminal.
//
// Completing is the one effectful transition. It runs in a single DB
// transaction so the status write and the ledger append commit together or
// not at all:
// 1. Conditional update WHERE status='scheduled'; zero rows -> finalized.
// 2. Resolve the appointment's patient and therapy; either missing aborts the
//    whole transaction, no partial revenue is ever recorded.
// 3. Append exactly one therapist ledger row with amount = therapy.price and
//    the scheduled date, not the completion timestamp. The unique index on
//    appointment_id backs the at-most-once guarantee at the store level.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := appointmentActionAllowed(principal, appointment); err != nil {
		return nil, err
	}

	status := entity.AppointmentStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.TransitionFromScheduled(tx, id, status, req.Notes)
	if err != nil {
		u.log.Warnf("Failed to transition appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentFinalized
	}

	if status == entity.AppointmentStatusCompleted {
		if appointment.PatientID == nil {
			return nil, ErrMissingReference
		}
		patient, err := u.patientRepo.FindByID(tx, *appointment.PatientID)
		if err != nil {
			u.log.Warnf("Failed to resolve patient for appointment %s: %+v", id, err)
			return nil, err
		}
		therapy, err := u.therapyRepo.FindByID(tx, appointment.TherapyID)
		if err != nil {
			u.log.Warnf("Failed to resolve therapy for appointment %s: %+v", id, err)
			return nil, err
		}
		if patient == nil || therapy == nil {
			return nil, ErrMissingReference
		}

		entry := therapistRevenueFor(appointment, patient, therapy)
		if err := u.revenueRepo.CreateTherapistEntry(tx, entry); err != nil {
			if isDuplicateKeyError(err, "appointment_id") {
				// Revenue for this appointment was already recorded.
				return nil, ErrAppointmentFinalized
			}
			u.log.Errorf("Failed to append revenue for appointment %s: %+v", id, err)
			return nil, err
		}
		u.log.Infof("Revenue recorded: appointment=%s, therapist=%s, amount=%s",
			id, entry.TherapistID, entry.Amount)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment transition %s: %+v", id, err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return nil, err
	}
	if full == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(full), nil
}

// Delete removes an appointment outright. Ledger rows referencing it survive;
// their FK is set to NULL by the store.
func (u *appointmentUsecase) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := appointmentActionAllowed(principal, appointment); err != nil {
		return err
	}

	if _, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}
