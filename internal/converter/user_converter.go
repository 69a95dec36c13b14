package converter

import (
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
)

// TherapistsToResponses projects therapist accounts for booking and referral
// pickers.
func TherapistsToResponses(users []entity.User) []dto.TherapistResponse {
	responses := make([]dto.TherapistResponse, len(users))
	for i, user := range users {
		responses[i] = dto.TherapistResponse{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
		}
	}
	return responses
}
