package dto

import "time"

type DonateRequestDTO struct {
	OrganizationID string `json:"organization_id" example:"clean-water"`
	Amount         int64  `json:"amount" example:"250"`
	DonorName      string `json:"donor_name" example:"Jordan Lee"`
	Message        string `json:"message,omitempty" example:"Keep up the great work"`
}

type SettlementResponseDTO struct {
	ID              string   `json:"id" example:"TXLX2J9K40"`
	State           string   `json:"state" example:"finalizing"`
	Phases          []string `json:"phases"`
	PhasesCompleted int      `json:"phases_completed" example:"2"`
	Organization    string   `json:"organization" example:"Clean Water Initiative"`
	Amount          int64    `json:"amount" example:"250"`
}

type DonationResponseDTO struct {
	ID               string    `json:"id" example:"TXLX2J9K40"`
	OrganizationID   string    `json:"organization_id" example:"clean-water"`
	OrganizationName string    `json:"organization_name" example:"Clean Water Initiative"`
	Amount           int64     `json:"amount" example:"250"`
	DonorName        string    `json:"donor_name" example:"Jordan Lee"`
	Message          string    `json:"message,omitempty"`
	Status           string    `json:"status" example:"completed"`
	Timestamp        time.Time `json:"timestamp" example:"2024-05-01T12:30:00Z"`
}

type OrganizationResponseDTO struct {
	ID                string  `json:"id" example:"clean-water"`
	Name              string  `json:"name" example:"Clean Water Initiative"`
	Description       string  `json:"description"`
	ImpactPerUnit     float64 `json:"impact_per_unit" example:"5"`
	TransparencyScore int     `json:"transparency_score" example:"98"`
}

type AccountMetricsResponseDTO struct {
	WalletBalance          int64 `json:"wallet_balance" example:"4750"`
	TotalDonated           int64 `json:"total_donated" example:"250"`
	OrganizationsSupported int   `json:"organizations_supported" example:"1"`
	PeopleHelped           int64 `json:"people_helped" example:"1250"`
	ImpactScore            int64 `json:"impact_score" example:"12"`
}
