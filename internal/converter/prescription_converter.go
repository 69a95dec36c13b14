package converter

import (
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
)

// PrescriptionToResponse builds the denormalized read projection. Doctor and
// therapist display names come from the joined user accounts; the patient
// name is omitted when the referenced patient was deleted.
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:                  prescription.ID,
		PatientID:           prescription.PatientID,
		DoctorName:          prescription.Doctor.Username,
		TherapistName:       prescription.Therapist.Username,
		TherapyIDs:          prescription.TherapyIDs,
		PrescriptionText:    prescription.PrescriptionText,
		DurationDays:        prescription.DurationDays,
		Frequency:           prescription.Frequency,
		SpecialInstructions: prescription.SpecialInstructions,
		Status:              string(prescription.Status),
		CreatedAt:           prescription.CreatedAt,
	}

	if prescription.Patient != nil {
		response.PatientName = prescription.Patient.Name
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to
// response DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}
