package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	PatientID           uuid.UUID `json:"patient_id" validate:"required"`
	TherapistName       string    `json:"therapist_name" validate:"required"`
	TherapyIDs          string    `json:"therapy_ids"`
	PrescriptionText    string    `json:"prescription_text" validate:"required"`
	DurationDays        int       `json:"duration_days" validate:"gte=0"`
	Frequency           string    `json:"frequency"`
	SpecialInstructions string    `json:"special_instructions"`
}

type UpdatePrescriptionRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID                  uuid.UUID  `json:"id"`
	PatientID           *uuid.UUID `json:"patient_id,omitempty"`
	PatientName         string     `json:"patient_name,omitempty"`
	DoctorName          string     `json:"doctor_name"`
	TherapistName       string     `json:"therapist_name"`
	TherapyIDs          string     `json:"therapy_ids"`
	PrescriptionText    string     `json:"prescription_text"`
	DurationDays        int        `json:"duration_days"`
	Frequency           string     `json:"frequency"`
	SpecialInstructions string     `json:"special_instructions"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
