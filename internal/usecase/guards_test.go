package usecase

import (
	"testing"
	"time"

	"ayursutra/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentActionAllowed(t *testing.T) {
	ownerID := uuid.New()
	therapistID := uuid.New()
	appointment := &entity.Appointment{PatientID: &ownerID, TherapistID: therapistID}

	assert.NoError(t, appointmentActionAllowed(entity.Principal{ID: ownerID, Role: entity.RolePatient}, appointment))
	assert.ErrorIs(t, appointmentActionAllowed(entity.Principal{ID: uuid.New(), Role: entity.RolePatient}, appointment), ErrAppointmentNotOwned)

	assert.NoError(t, appointmentActionAllowed(entity.Principal{ID: therapistID, Role: entity.RoleTherapist}, appointment))
	assert.ErrorIs(t, appointmentActionAllowed(entity.Principal{ID: uuid.New(), Role: entity.RoleTherapist}, appointment), ErrAppointmentNotOwned)

	assert.NoError(t, appointmentActionAllowed(entity.Principal{ID: uuid.New(), Role: entity.RoleDoctor}, appointment))
	assert.NoError(t, appointmentActionAllowed(entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}, appointment))
}

func TestAppointmentActionAllowedOrphanedBooking(t *testing.T) {
	// A booking whose patient was deleted cannot be claimed by any patient.
	appointment := &entity.Appointment{PatientID: nil, TherapistID: uuid.New()}
	err := appointmentActionAllowed(entity.Principal{ID: uuid.New(), Role: entity.RolePatient}, appointment)
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
}

func TestPrescriptionDecisionAllowed(t *testing.T) {
	therapistID := uuid.New()
	prescription := &entity.Prescription{TherapistID: therapistID}

	assert.NoError(t, prescriptionDecisionAllowed(entity.Principal{ID: therapistID, Role: entity.RoleTherapist}, prescription))

	// Another therapist, and every non-therapist role including admin.
	assert.ErrorIs(t, prescriptionDecisionAllowed(entity.Principal{ID: uuid.New(), Role: entity.RoleTherapist}, prescription), ErrPrescriptionNotAssigned)
	assert.ErrorIs(t, prescriptionDecisionAllowed(entity.Principal{ID: therapistID, Role: entity.RoleAdmin}, prescription), ErrPrescriptionNotAssigned)
	assert.ErrorIs(t, prescriptionDecisionAllowed(entity.Principal{ID: therapistID, Role: entity.RoleDoctor}, prescription), ErrPrescriptionNotAssigned)
}

func TestTherapistRevenueFor(t *testing.T) {
	scheduled := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		TherapistID:     uuid.New(),
		AppointmentDate: scheduled,
	}
	patient := &entity.Patient{Name: "Asha Rao"}
	therapy := &entity.Therapy{Name: "Abhyanga", Price: decimal.NewFromInt(2000)}

	entry := therapistRevenueFor(appointment, patient, therapy)
	require.NotNil(t, entry.AppointmentID)
	assert.Equal(t, appointment.ID, *entry.AppointmentID)
	assert.Equal(t, appointment.TherapistID, entry.TherapistID)
	assert.Equal(t, "Asha Rao", entry.PatientName)
	assert.Equal(t, "Abhyanga", entry.TherapyName)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(2000)))
	// Entry date is the scheduled date, not the completion timestamp.
	assert.Equal(t, scheduled, entry.EntryDate)
}

func TestDoctorRevenueFor(t *testing.T) {
	now := time.Date(2025, 3, 20, 11, 0, 0, 0, time.UTC)
	prescription := &entity.Prescription{ID: uuid.New(), DoctorID: uuid.New()}
	patient := &entity.Patient{Name: "Asha Rao"}

	entry := doctorRevenueFor(prescription, patient, now)
	require.NotNil(t, entry.PrescriptionID)
	assert.Equal(t, prescription.ID, *entry.PrescriptionID)
	assert.Equal(t, prescription.DoctorID, entry.DoctorID)
	assert.True(t, entry.ConsultationFee.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, now, entry.EntryDate)
}

func TestParseWireDate(t *testing.T) {
	parsed, err := parseWireDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), parsed)

	_, err = parseWireDate("14/03/2025")
	assert.Error(t, err)
}
