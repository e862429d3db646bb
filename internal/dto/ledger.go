package dto

import "time"

type TransactionResponseDTO struct {
	ID               string    `json:"id" example:"TXLX2J9K40"`
	Kind             string    `json:"kind" example:"donation"`
	OrganizationID   string    `json:"organization_id" example:"clean-water"`
	OrganizationName string    `json:"organization_name" example:"Clean Water Initiative"`
	Amount           int64     `json:"amount" example:"250"`
	Description      string    `json:"description" example:"Donation from Jordan Lee"`
	DonorName        string    `json:"donor_name,omitempty" example:"Jordan Lee"`
	Timestamp        time.Time `json:"timestamp" example:"2024-05-01T12:30:00Z"`
}
