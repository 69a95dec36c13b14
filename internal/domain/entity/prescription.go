package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus represents the status of a prescription
type PrescriptionStatus string

const (
	PrescriptionStatusPending  PrescriptionStatus = "pending"
	PrescriptionStatusAccepted PrescriptionStatus = "accepted"
	PrescriptionStatusRejected PrescriptionStatus = "rejected"
)

// Terminal reports whether no further transition is defined from the status.
func (s PrescriptionStatus) Terminal() bool {
	return s == PrescriptionStatusAccepted || s == PrescriptionStatusRejected
}

// Prescription is a doctor-to-therapist referral. It is decoupled from
// appointments: only the assigned therapist may accept or reject it, and the
// doctor's consultation fee is recognized at creation, not at acceptance.
//
// TherapyIDs stays a comma-joined string of therapy UUIDs for wire
// compatibility with the original clients.
type Prescription struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID           *uuid.UUID         `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	DoctorID            uuid.UUID          `gorm:"type:uuid;not null;index" json:"doctor_id"`
	TherapistID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"therapist_id"`
	TherapyIDs          string             `gorm:"type:text" json:"therapy_ids"`
	PrescriptionText    string             `gorm:"type:text;not null" json:"prescription_text"`
	DurationDays        int                `json:"duration_days"`
	Frequency           string             `gorm:"type:varchar(100)" json:"frequency"`
	SpecialInstructions string             `gorm:"type:text" json:"special_instructions"`
	Status              PrescriptionStatus `gorm:"type:prescription_status;not null;default:'pending';index" json:"status"`
	CreatedAt           time.Time          `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient   *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    User     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Therapist User     `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// IsPending checks if the prescription still awaits a therapist decision.
func (p *Prescription) IsPending() bool {
	return p.Status == PrescriptionStatusPending
}
