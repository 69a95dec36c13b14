package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultConsultationFee is the flat fee recognized per prescription.
var DefaultConsultationFee = decimal.NewFromInt(500)

// TherapistRevenueEntry is an append-only ledger row, written exactly once
// when an appointment transitions scheduled -> completed. The unique index on
// AppointmentID enforces at-most-one entry per appointment at the store
// level. Patient and therapy names are snapshotted at append time; ledger
// rows survive deletion of their source appointment (FK set to NULL).
type TherapistRevenueEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TherapistID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"therapist_id"`
	AppointmentID *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"appointment_id,omitempty"`
	PatientName   string          `gorm:"type:varchar(255)" json:"patient_name"`
	TherapyName   string          `gorm:"type:varchar(255)" json:"therapy_name"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	EntryDate     time.Time       `gorm:"type:date;not null" json:"-"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Therapist User `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`
}

func (TherapistRevenueEntry) TableName() string {
	return "therapist_revenue_entries"
}

// DoctorRevenueEntry is an append-only ledger row, written exactly once per
// prescription creation, regardless of whether the therapist ever accepts it.
type DoctorRevenueEntry struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PrescriptionID  *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"prescription_id,omitempty"`
	PatientName     string          `gorm:"type:varchar(255)" json:"patient_name"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	EntryDate       time.Time       `gorm:"type:date;not null" json:"-"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorRevenueEntry) TableName() string {
	return "doctor_revenue_entries"
}
