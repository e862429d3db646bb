// Package metrics derives per-donor aggregates from the donation collection.
// Derivation is pure: same donations in, same metrics out, no side effects.
package metrics

import (
	"math"

	"github.com/aidchain/aidchain/internal/domain"
)

// Impact score grows 5 points per 100 units donated and saturates at 95.
const (
	impactScoreCap     = 95
	impactScorePer     = 5
	impactScoreDivisor = 100
)

// RateLookup resolves an organization's impact-per-unit conversion rate.
type RateLookup interface {
	Get(id string) (domain.Organization, error)
}

// ComputeAccountMetrics recomputes every derived aggregate from scratch.
// Donations referencing organizations missing from the catalog contribute to
// monetary totals but not to people helped; that cannot happen through the
// settlement path, which validates the organization before staging.
func ComputeAccountMetrics(donations []domain.Donation, allowance int64, rates RateLookup) domain.AccountMetrics {
	m := domain.AccountMetrics{}

	supported := make(map[string]struct{})
	for _, d := range donations {
		m.TotalDonated += d.Amount
		supported[d.OrganizationID] = struct{}{}

		if org, err := rates.Get(d.OrganizationID); err == nil {
			m.PeopleHelped += int64(math.Floor(float64(d.Amount) * org.ImpactPerUnit))
		}
	}

	m.WalletBalance = allowance - m.TotalDonated
	m.OrganizationsSupported = len(supported)

	score := m.TotalDonated * impactScorePer / impactScoreDivisor
	if score > impactScoreCap {
		score = impactScoreCap
	}
	m.ImpactScore = score

	return m
}
