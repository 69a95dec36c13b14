package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateAppointmentRequest takes the therapist by display name for wire
// compatibility with the original clients; the name is resolved to a real
// therapist account before anything is persisted.
type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	TherapyID       uuid.UUID `json:"therapy_id" validate:"required"`
	TherapistName   string    `json:"therapist_name" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string    `json:"appointment_time" validate:"required"`
	Notes           string    `json:"notes"`
}

// UpdateAppointmentRequest carries the target status and, optionally, new
// notes. Notes is a pointer so a status-only update leaves the stored notes
// untouched instead of blanking them.
type UpdateAppointmentRequest struct {
	Status string  `json:"status" validate:"required,oneof=completed cancelled"`
	Notes  *string `json:"notes"`
}

// Response DTOs

// AppointmentResponse is the denormalized read projection: patient and
// therapy fields are resolved per read and omitted when the referenced
// patient no longer exists.
type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       *uuid.UUID      `json:"patient_id,omitempty"`
	PatientName     string          `json:"patient_name,omitempty"`
	TherapyID       uuid.UUID       `json:"therapy_id"`
	TherapyName     string          `json:"therapy_name"`
	Duration        int             `json:"duration"`
	Price           decimal.Decimal `json:"price"`
	TherapistID     uuid.UUID       `json:"therapist_id"`
	TherapistName   string          `json:"therapist_name"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
