package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TherapyResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Duration    int             `json:"duration"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
