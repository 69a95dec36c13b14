package converter

import (
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
)

// TherapistRevenueToResponse converts a ledger entry to its response DTO
func TherapistRevenueToResponse(entry *entity.TherapistRevenueEntry) *dto.TherapistRevenueResponse {
	if entry == nil {
		return nil
	}

	return &dto.TherapistRevenueResponse{
		ID:            entry.ID,
		TherapistName: entry.Therapist.Username,
		AppointmentID: entry.AppointmentID,
		PatientName:   entry.PatientName,
		TherapyName:   entry.TherapyName,
		Amount:        entry.Amount,
		Date:          entry.EntryDate.Format(DateLayout),
		CreatedAt:     entry.CreatedAt,
	}
}

// TherapistRevenuesToResponses converts a slice of ledger entries
func TherapistRevenuesToResponses(entries []entity.TherapistRevenueEntry) []dto.TherapistRevenueResponse {
	responses := make([]dto.TherapistRevenueResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *TherapistRevenueToResponse(&entry)
	}
	return responses
}

// DoctorRevenueToResponse converts a ledger entry to its response DTO
func DoctorRevenueToResponse(entry *entity.DoctorRevenueEntry) *dto.DoctorRevenueResponse {
	if entry == nil {
		return nil
	}

	return &dto.DoctorRevenueResponse{
		ID:              entry.ID,
		DoctorName:      entry.Doctor.Username,
		PrescriptionID:  entry.PrescriptionID,
		PatientName:     entry.PatientName,
		ConsultationFee: entry.ConsultationFee,
		Date:            entry.EntryDate.Format(DateLayout),
		CreatedAt:       entry.CreatedAt,
	}
}

// DoctorRevenuesToResponses converts a slice of ledger entries
func DoctorRevenuesToResponses(entries []entity.DoctorRevenueEntry) []dto.DoctorRevenueResponse {
	responses := make([]dto.DoctorRevenueResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *DoctorRevenueToResponse(&entry)
	}
	return responses
}
