package converter

import (
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
)

// TherapyToResponse converts a Therapy entity to TherapyResponse DTO
func TherapyToResponse(therapy *entity.Therapy) *dto.TherapyResponse {
	if therapy == nil {
		return nil
	}

	return &dto.TherapyResponse{
		ID:          therapy.ID,
		Name:        therapy.Name,
		Duration:    therapy.DurationMinutes,
		Description: therapy.Description,
		Price:       therapy.Price,
	}
}

// TherapiesToResponses converts a slice of Therapy entities to response DTOs
func TherapiesToResponses(therapies []entity.Therapy) []dto.TherapyResponse {
	responses := make([]dto.TherapyResponse, len(therapies))
	for i, therapy := range therapies {
		responses[i] = *TherapyToResponse(&therapy)
	}
	return responses
}
