package converter

import (
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
)

// DateLayout is the wire format for schedule and ledger dates.
const DateLayout = "2006-01-02"

// AppointmentToResponse builds the denormalized read projection. A deleted
// patient leaves the reference NULL; the patient fields are then omitted
// instead of failing the read.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		TherapyID:       appointment.TherapyID,
		TherapistID:     appointment.TherapistID,
		AppointmentDate: appointment.AppointmentDate.Format(DateLayout),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.Name
	}
	response.TherapyName = appointment.Therapy.Name
	response.Duration = appointment.Therapy.DurationMinutes
	response.Price = appointment.Therapy.Price
	response.TherapistName = appointment.Therapist.Username

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to
// response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
