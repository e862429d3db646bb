package domain

import "time"

type Role string

const (
	RoleDonor Role = "donor"
	RoleAdmin Role = "admin"
)

type TransactionKind string

const (
	KindDonation     TransactionKind = "donation"
	KindDisbursement TransactionKind = "disbursement"
	KindImpact       TransactionKind = "impact"
)

const DonationStatusCompleted = "completed"

type Account struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Role         Role      `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Organization is a catalog entry. Catalog entries are immutable at runtime.
type Organization struct {
	ID                string
	Name              string
	Description       string
	ImpactPerUnit     float64
	TransparencyScore int
}

type Donation struct {
	ID               string    `db:"id"`
	DonorID          int       `db:"donor_id"`
	OrganizationID   string    `db:"organization_id"`
	OrganizationName string    `db:"organization_name"`
	Amount           int64     `db:"amount"`
	DonorName        string    `db:"donor_name"`
	Message          string    `db:"message"`
	Status           string    `db:"status"`
	Timestamp        time.Time `db:"created_at"`
}

type ImpactUpdate struct {
	ID               string    `db:"id"`
	OrganizationID   string    `db:"organization_id"`
	OrganizationName string    `db:"organization_name"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	FundsUsed        int64     `db:"funds_used"`
	PeopleImpacted   int64     `db:"people_impacted"`
	Timestamp        time.Time `db:"created_at"`
}

// Transaction is a unified ledger line. OrganizationName is a snapshot taken
// at append time, never a live catalog reference.
type Transaction struct {
	ID               string          `db:"id"`
	Kind             TransactionKind `db:"kind"`
	OrganizationID   string          `db:"organization_id"`
	OrganizationName string          `db:"organization_name"`
	Amount           int64           `db:"amount"`
	Description      string          `db:"description"`
	DonorName        string          `db:"donor_name"`
	Timestamp        time.Time       `db:"created_at"`
}

// AccountMetrics holds the derived per-donor aggregates. Every field is
// recomputed from the donation collection, never stored.
type AccountMetrics struct {
	WalletBalance          int64
	TotalDonated           int64
	OrganizationsSupported int
	PeopleHelped           int64
	ImpactScore            int64
}
