package dto

import "time"

type RecordImpactRequestDTO struct {
	OrganizationID string `json:"organization_id" example:"education"`
	Title          string `json:"title" example:"New school supplies"`
	Description    string `json:"description" example:"Purchased textbooks for three classrooms"`
	FundsUsed      int64  `json:"funds_used" example:"1200"`
	PeopleImpacted int64  `json:"people_impacted" example:"90"`
}

type ImpactUpdateResponseDTO struct {
	ID               string    `json:"id" example:"UPLX2J9K41"`
	OrganizationID   string    `json:"organization_id" example:"education"`
	OrganizationName string    `json:"organization_name" example:"Education for All"`
	Title            string    `json:"title" example:"New school supplies"`
	Description      string    `json:"description"`
	FundsUsed        int64     `json:"funds_used" example:"1200"`
	PeopleImpacted   int64     `json:"people_impacted" example:"90"`
	Timestamp        time.Time `json:"timestamp" example:"2024-05-02T09:00:00Z"`
}
