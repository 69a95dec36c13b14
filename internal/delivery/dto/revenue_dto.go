package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TherapistRevenueResponse struct {
	ID            uuid.UUID       `json:"id"`
	TherapistName string          `json:"therapist_name"`
	AppointmentID *uuid.UUID      `json:"appointment_id,omitempty"`
	PatientName   string          `json:"patient_name"`
	TherapyName   string          `json:"therapy_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

type DoctorRevenueResponse struct {
	ID              uuid.UUID       `json:"id"`
	DoctorName      string          `json:"doctor_name"`
	PrescriptionID  *uuid.UUID      `json:"prescription_id,omitempty"`
	PatientName     string          `json:"patient_name"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Date            string          `json:"date"`
	CreatedAt       time.Time       `json:"created_at"`
}
