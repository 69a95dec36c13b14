package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the registry record for a clinic patient. Email doubles as the
// patient's login identifier, so it is unique across the registry.
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Age            int       `json:"age"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Address        string    `gorm:"type:text" json:"address"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
