package handler

import (
	"net/http"

	"ayursutra/internal/delivery/http/middleware"
	"ayursutra/internal/usecase"
	"ayursutra/pkg/response"
)

type RevenueHandler struct {
	revenueUsecase usecase.RevenueUsecase
}

func NewRevenueHandler(revenueUsecase usecase.RevenueUsecase) *RevenueHandler {
	return &RevenueHandler{revenueUsecase: revenueUsecase}
}

func (h *RevenueHandler) TherapistLedger(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	entries, err := h.revenueUsecase.TherapistLedger(r.Context(), principal)
	if err != nil {
		response.InternalServerError(w, "Failed to read therapist revenue")
		return
	}

	response.Success(w, http.StatusOK, "Therapist revenue retrieved successfully", entries)
}

func (h *RevenueHandler) DoctorLedger(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	entries, err := h.revenueUsecase.DoctorLedger(r.Context(), principal)
	if err != nil {
		response.InternalServerError(w, "Failed to read doctor revenue")
		return
	}

	response.Success(w, http.StatusOK, "Doctor revenue retrieved successfully", entries)
}
