package donationservice

import (
	"context"
	"time"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/ledger"
	"github.com/aidchain/aidchain/internal/metrics"
	"github.com/aidchain/aidchain/internal/settlement"
	"go.uber.org/zap"
)

// Archive mirrors committed ledger entries into durable storage.
type Archive interface {
	AppendDonation(ctx context.Context, d domain.Donation, tx domain.Transaction) error
}

type Service struct {
	store       *ledger.Store
	catalog     *catalog.Catalog
	archive     Archive
	allowance   int64
	settlements *settlement.Manager
}

func New(store *ledger.Store, cat *catalog.Catalog, archive Archive, allowance int64, phaseInterval time.Duration) *Service {
	s := &Service{
		store:     store,
		catalog:   cat,
		archive:   archive,
		allowance: allowance,
	}
	s.settlements = settlement.NewManager(cat, s, s, phaseInterval)
	return s
}

// Submit stages a settlement for the donor. The returned snapshot reflects
// the staged process; completion is asynchronous.
func (s *Service) Submit(ctx context.Context, req settlement.Request) (settlement.Snapshot, error) {
	p, err := s.settlements.Submit(ctx, req)
	if err != nil {
		return settlement.Snapshot{}, err
	}
	return p.Snapshot(), nil
}

func (s *Service) SettlementStatus(ctx context.Context, donorID int) (settlement.Snapshot, error) {
	return s.settlements.Status(donorID)
}

func (s *Service) CancelSettlement(ctx context.Context, donorID int) error {
	return s.settlements.Cancel(donorID)
}

func (s *Service) Metrics(ctx context.Context, donorID int) domain.AccountMetrics {
	donations := s.store.ListDonationsByDonor(donorID)
	return metrics.ComputeAccountMetrics(donations, s.allowance, s.catalog)
}

func (s *Service) Donations(ctx context.Context, donorID int) []domain.Donation {
	return s.store.ListDonationsByDonor(donorID)
}

func (s *Service) Organizations(ctx context.Context) []domain.Organization {
	return s.catalog.List()
}

// WalletBalance reports the donor's derived balance. Used by the settlement
// manager during validation.
func (s *Service) WalletBalance(ctx context.Context, donorID int) (int64, error) {
	return s.Metrics(ctx, donorID).WalletBalance, nil
}

// CommitDonation is the settlement commit hook: the in-memory append is the
// authoritative mutation, the archive write is a durable mirror, and the
// fresh metrics snapshot makes the recompute observable per commit. Archive
// failures are logged, not propagated; the ledger store remains the source
// of truth for the process lifetime.
func (s *Service) CommitDonation(ctx context.Context, d domain.Donation) {
	tx := s.store.AppendDonation(d)

	if err := s.archive.AppendDonation(ctx, d, tx); err != nil {
		zap.L().Error("failed to archive donation",
			zap.String("donationID", d.ID),
			zap.Error(err),
		)
	}

	m := s.Metrics(ctx, d.DonorID)
	zap.L().Info("account metrics recomputed",
		zap.Int("donorID", d.DonorID),
		zap.Int64("walletBalance", m.WalletBalance),
		zap.Int64("totalDonated", m.TotalDonated),
		zap.Int("organizationsSupported", m.OrganizationsSupported),
		zap.Int64("peopleHelped", m.PeopleHelped),
		zap.Int64("impactScore", m.ImpactScore),
	)
}
