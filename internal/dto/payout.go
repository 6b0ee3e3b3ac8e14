package dto

import "time"

type PayoutRequestDTO struct {
	ProviderID string  `json:"provider_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0" example:"250"`
	Note       string  `json:"note" validate:"max=500" example:"weekly payout"`
	CardNumber string  `json:"card_number" validate:"required" example:"4561261212345467"`
}

type PayoutResponseDTO struct {
	ID          string     `json:"id"`
	ProviderID  string     `json:"provider_id"`
	Amount      float64    `json:"amount" example:"250"`
	Status      string     `json:"status" example:"pending"`
	Note        string     `json:"note,omitempty"`
	CardNumber  string     `json:"card_number"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
