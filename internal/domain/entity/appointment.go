package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no further transition is defined from the status.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment is a booked therapy session. PatientID is nullable: deleting a
// patient does not cascade, the reference is set to NULL and reads omit the
// denormalized patient fields.
//
// The therapist is a real foreign key onto users; the external API still
// speaks in therapist display names, resolved from Therapist.Username.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       *uuid.UUID        `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	TherapyID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"therapy_id"`
	TherapistID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"therapist_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"-"`
	AppointmentTime string            `gorm:"type:time;not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Therapy   Therapy  `gorm:"foreignKey:TherapyID" json:"therapy,omitempty"`
	Therapist User     `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment can still transition.
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCompleted checks if the session was completed.
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment was cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
