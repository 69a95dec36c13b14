package handler

import (
	"encoding/json"
	"net/http"

	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/delivery/http/middleware"
	"ayursutra/internal/usecase"
	"ayursutra/pkg/response"
	"ayursutra/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.prescriptionUsecase.List(r.Context(), principal)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", resp)
}

// Create is doctor-only (enforced by route middleware); the caller becomes
// the prescribing doctor.
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), principal, &req)
	if err != nil {
		switch err {
		case usecase.ErrTherapistNotFound:
			response.UnprocessableEntity(w, "Therapist not found")
		case usecase.ErrMissingReference:
			response.UnprocessableEntity(w, "Referenced patient no longer exists")
		default:
			response.InternalServerError(w, "Failed to send prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription sent successfully", prescription)
}

// Decide is therapist-only (enforced by route middleware); the usecase
// additionally checks assignment.
func (h *PrescriptionHandler) Decide(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription id", nil)
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Decide(r.Context(), principal, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrPrescriptionNotAssigned:
			response.Forbidden(w, "Only the assigned therapist may decide this prescription")
		case usecase.ErrPrescriptionFinalized:
			response.Conflict(w, "Prescription is already accepted or rejected")
		default:
			response.InternalServerError(w, "Failed to update prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}
