package dto

import "time"

type ProviderResponseDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" example:"Alice's Plumbing"`
	Email       string    `json:"email" example:"alice@example.com"`
	Phone       string    `json:"phone" example:"+15551234567"`
	Address     string    `json:"address"`
	CountryCode string    `json:"country_code" example:"US"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomerResponseDTO struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name" example:"Bob"`
	LastName      string     `json:"last_name" example:"Smith"`
	Email         string     `json:"email" example:"bob@example.com"`
	Phone         string     `json:"phone" example:"+15559876543"`
	Address       string     `json:"address"`
	LastRequestAt *time.Time `json:"last_request_at,omitempty"`
}

type DashboardStatsResponseDTO struct {
	Providers      int64 `json:"providers" example:"12"`
	Customers      int64 `json:"customers" example:"340"`
	PendingPayouts int64 `json:"pending_payouts" example:"3"`
}
