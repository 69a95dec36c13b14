package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Therapy is immutable catalog data, seeded once when the table is empty.
// There is no write surface over it.
type Therapy struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	DurationMinutes int             `gorm:"not null" json:"duration"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (Therapy) TableName() string {
	return "therapies"
}
