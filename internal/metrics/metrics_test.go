package metrics

import (
	"testing"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/stretchr/testify/assert"
)

func donation(orgID string, amount int64) domain.Donation {
	return domain.Donation{
		OrganizationID: orgID,
		Amount:         amount,
		Status:         domain.DonationStatusCompleted,
	}
}

func TestComputeAccountMetrics(t *testing.T) {
	c := catalog.New()

	tests := []struct {
		name      string
		donations []domain.Donation
		allowance int64
		expected  domain.AccountMetrics
	}{
		{
			name:      "No donations",
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance: 5000,
			},
		},
		{
			name:      "Single donation with rate 2",
			donations: []domain.Donation{donation("education", 100)},
			allowance: 500,
			expected: domain.AccountMetrics{
				WalletBalance:          400,
				TotalDonated:           100,
				OrganizationsSupported: 1,
				PeopleHelped:           200,
				ImpactScore:            5,
			},
		},
		{
			name: "Same organization counted once",
			donations: []domain.Donation{
				donation("clean-water", 50),
				donation("clean-water", 75),
			},
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance:          4875,
				TotalDonated:           125,
				OrganizationsSupported: 1,
				PeopleHelped:           625,
				ImpactScore:            6,
			},
		},
		{
			name: "Distinct organizations",
			donations: []domain.Donation{
				donation("clean-water", 100),
				donation("education", 100),
				donation("healthcare", 100),
			},
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance:          4700,
				TotalDonated:           300,
				OrganizationsSupported: 3,
				PeopleHelped:           1000,
				ImpactScore:            15,
			},
		},
		{
			name:      "People helped uses floor not round",
			donations: []domain.Donation{donation("clean-water", 120)},
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance:          4880,
				TotalDonated:           120,
				OrganizationsSupported: 1,
				PeopleHelped:           600,
				ImpactScore:            6,
			},
		},
		{
			name:      "Impact score floors fractional steps",
			donations: []domain.Donation{donation("education", 30)},
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance:          4970,
				TotalDonated:           30,
				OrganizationsSupported: 1,
				PeopleHelped:           60,
				ImpactScore:            1,
			},
		},
		{
			name:      "Impact score saturates at 95",
			donations: []domain.Donation{donation("education", 1900)},
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance:          3100,
				TotalDonated:           1900,
				OrganizationsSupported: 1,
				PeopleHelped:           3800,
				ImpactScore:            95,
			},
		},
		{
			name: "Impact score stays capped past saturation",
			donations: []domain.Donation{
				donation("education", 1900),
				donation("clean-water", 2000),
			},
			allowance: 5000,
			expected: domain.AccountMetrics{
				WalletBalance:          1100,
				TotalDonated:           3900,
				OrganizationsSupported: 2,
				PeopleHelped:           13800,
				ImpactScore:            95,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAccountMetrics(tt.donations, tt.allowance, c)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeAccountMetricsIdempotent(t *testing.T) {
	c := catalog.New()
	donations := []domain.Donation{
		donation("clean-water", 100),
		donation("education", 250),
	}

	first := ComputeAccountMetrics(donations, 5000, c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeAccountMetrics(donations, 5000, c))
	}
}
