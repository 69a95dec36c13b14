package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFilterByRole(t *testing.T) {
	id := uuid.New()

	patient := Principal{ID: id, Role: RolePatient}.AppointmentFilter()
	require.NotNil(t, patient.PatientID)
	assert.Equal(t, id, *patient.PatientID)
	assert.Nil(t, patient.TherapistID)

	therapist := Principal{ID: id, Role: RoleTherapist}.AppointmentFilter()
	require.NotNil(t, therapist.TherapistID)
	assert.Equal(t, id, *therapist.TherapistID)
	assert.Nil(t, therapist.PatientID)

	for _, role := range []Role{RoleDoctor, RoleAdmin} {
		filter := Principal{ID: id, Role: role}.AppointmentFilter()
		assert.Nil(t, filter.PatientID)
		assert.Nil(t, filter.TherapistID)
	}
}

func TestAppointmentFilterUnknownRoleIsLeastPrivileged(t *testing.T) {
	id := uuid.New()
	filter := Principal{ID: id, Role: Role("ghost")}.AppointmentFilter()
	require.NotNil(t, filter.PatientID)
	assert.Equal(t, id, *filter.PatientID)
}

func TestPrescriptionFilterByRole(t *testing.T) {
	id := uuid.New()

	patient := Principal{ID: id, Role: RolePatient}.PrescriptionFilter()
	require.NotNil(t, patient.PatientID)
	assert.Equal(t, id, *patient.PatientID)

	therapist := Principal{ID: id, Role: RoleTherapist}.PrescriptionFilter()
	require.NotNil(t, therapist.TherapistID)
	assert.Equal(t, id, *therapist.TherapistID)

	doctor := Principal{ID: id, Role: RoleDoctor}.PrescriptionFilter()
	assert.Nil(t, doctor.PatientID)
	assert.Nil(t, doctor.TherapistID)
}

func TestRevenueFiltersScopeOnlyTheOwningRole(t *testing.T) {
	id := uuid.New()

	therapist := Principal{ID: id, Role: RoleTherapist}
	require.NotNil(t, therapist.TherapistRevenueFilter().OwnerID)
	assert.Nil(t, therapist.DoctorRevenueFilter().OwnerID)

	doctor := Principal{ID: id, Role: RoleDoctor}
	require.NotNil(t, doctor.DoctorRevenueFilter().OwnerID)
	assert.Nil(t, doctor.TherapistRevenueFilter().OwnerID)

	admin := Principal{ID: id, Role: RoleAdmin}
	assert.Nil(t, admin.TherapistRevenueFilter().OwnerID)
	assert.Nil(t, admin.DoctorRevenueFilter().OwnerID)
}
