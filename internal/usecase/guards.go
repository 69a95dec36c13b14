package usecase

import (
	"time"

	"ayursutra/internal/converter"
	"ayursutra/internal/domain/entity"
)

// appointmentActionAllowed decides whether the principal may mutate the
// appointment. Writes follow the same ownership rules as reads: a patient
// touches only their own bookings, a therapist only their assigned sessions.
// Doctors and admins are unrestricted.
func appointmentActionAllowed(p entity.Principal, a *entity.Appointment) error {
	switch p.Role {
	case entity.RolePatient:
		if a.PatientID == nil || *a.PatientID != p.ID {
			return ErrAppointmentNotOwned
		}
	case entity.RoleTherapist:
		if a.TherapistID != p.ID {
			return ErrAppointmentNotOwned
		}
	case entity.RoleDoctor, entity.RoleAdmin:
	}
	return nil
}

// prescriptionDecisionAllowed restricts accept/reject to the assigned
// therapist.
func prescriptionDecisionAllowed(p entity.Principal, pres *entity.Prescription) error {
	if p.Role != entity.RoleTherapist || pres.TherapistID != p.ID {
		return ErrPrescriptionNotAssigned
	}
	return nil
}

// therapistRevenueFor builds the single ledger row for a completed
// appointment. Amount is the therapy's price and the entry date is the
// scheduled date, not the completion timestamp; names are snapshotted so the
// ledger survives later deletions.
func therapistRevenueFor(a *entity.Appointment, patient *entity.Patient, therapy *entity.Therapy) *entity.TherapistRevenueEntry {
	appointmentID := a.ID
	return &entity.TherapistRevenueEntry{
		TherapistID:   a.TherapistID,
		AppointmentID: &appointmentID,
		PatientName:   patient.Name,
		TherapyName:   therapy.Name,
		Amount:        therapy.Price,
		EntryDate:     a.AppointmentDate,
	}
}

// doctorRevenueFor builds the single ledger row recognized at prescription
// creation. The flat consultation fee applies regardless of whether the
// therapist ever accepts the referral.
func doctorRevenueFor(pres *entity.Prescription, patient *entity.Patient, now time.Time) *entity.DoctorRevenueEntry {
	prescriptionID := pres.ID
	return &entity.DoctorRevenueEntry{
		DoctorID:        pres.DoctorID,
		PrescriptionID:  &prescriptionID,
		PatientName:     patient.Name,
		ConsultationFee: entity.DefaultConsultationFee,
		EntryDate:       now,
	}
}

// parseWireDate parses the API's date format.
func parseWireDate(s string) (time.Time, error) {
	return time.Parse(converter.DateLayout, s)
}
