package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpsertPatientRequest is shared by create and full-replace update.
type UpsertPatientRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
