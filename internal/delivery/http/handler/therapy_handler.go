package handler

import (
	"net/http"

	"ayursutra/internal/usecase"
	"ayursutra/pkg/response"
)

type TherapyHandler struct {
	therapyUsecase usecase.TherapyUsecase
}

func NewTherapyHandler(therapyUsecase usecase.TherapyUsecase) *TherapyHandler {
	return &TherapyHandler{therapyUsecase: therapyUsecase}
}

// List returns the full catalog. Authenticated callers only; there is no
// write surface.
func (h *TherapyHandler) List(w http.ResponseWriter, r *http.Request) {
	therapies, err := h.therapyUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list therapies")
		return
	}

	response.Success(w, http.StatusOK, "Therapies retrieved successfully", therapies)
}
