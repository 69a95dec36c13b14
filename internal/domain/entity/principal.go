package entity

import "github.com/google/uuid"

// Principal is the authenticated caller's resolved identity. For staff roles
// ID points at users.id; for patients it points at patients.id and Username
// holds the patient's email.
type Principal struct {
	ID       uuid.UUID
	Username string
	Role     Role
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	PatientID   *uuid.UUID
	TherapistID *uuid.UUID
}

// PrescriptionFilter mirrors AppointmentFilter for the prescription ledger.
type PrescriptionFilter struct {
	PatientID   *uuid.UUID
	TherapistID *uuid.UUID
}

// RevenueFilter scopes ledger reads to a single owner when set.
type RevenueFilter struct {
	OwnerID *uuid.UUID
}

// AppointmentFilter builds the role-scoped read filter for appointment
// lists. It is a pure function of the principal and is rebuilt on every
// request; there is no cached or precomputed view.
func (p Principal) AppointmentFilter() AppointmentFilter {
	id := p.ID
	switch p.Role {
	case RolePatient:
		return AppointmentFilter{PatientID: &id}
	case RoleTherapist:
		return AppointmentFilter{TherapistID: &id}
	case RoleDoctor, RoleAdmin:
		return AppointmentFilter{}
	}
	// Unknown roles never reach here through the middleware; give them the
	// least-privileged view anyway.
	return AppointmentFilter{PatientID: &id}
}

// PrescriptionFilter builds the role-scoped read filter for prescription
// lists.
func (p Principal) PrescriptionFilter() PrescriptionFilter {
	id := p.ID
	switch p.Role {
	case RolePatient:
		return PrescriptionFilter{PatientID: &id}
	case RoleTherapist:
		return PrescriptionFilter{TherapistID: &id}
	case RoleDoctor, RoleAdmin:
		return PrescriptionFilter{}
	}
	return PrescriptionFilter{PatientID: &id}
}

// TherapistRevenueFilter scopes therapist ledger reads: a therapist sees only
// their own rows, every other role sees all.
func (p Principal) TherapistRevenueFilter() RevenueFilter {
	id := p.ID
	switch p.Role {
	case RoleTherapist:
		return RevenueFilter{OwnerID: &id}
	case RoleAdmin, RoleDoctor, RolePatient:
		return RevenueFilter{}
	}
	return RevenueFilter{OwnerID: &id}
}

// DoctorRevenueFilter scopes doctor ledger reads: a doctor sees only their
// own rows, every other role sees all.
func (p Principal) DoctorRevenueFilter() RevenueFilter {
	id := p.ID
	switch p.Role {
	case RoleDoctor:
		return RevenueFilter{OwnerID: &id}
	case RoleAdmin, RoleTherapist, RolePatient:
		return RevenueFilter{}
	}
	return RevenueFilter{OwnerID: &id}
}
