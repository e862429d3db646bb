package impactservice

import (
	"context"
	"errors"
	"time"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/ledger"
	"github.com/aidchain/aidchain/pkg/ident"
	"go.uber.org/zap"
)

var ErrInvalidDisbursement = errors.New("invalid disbursement")

// Archive mirrors disbursement triples into durable storage.
type Archive interface {
	AppendDisbursement(ctx context.Context, u domain.ImpactUpdate, txs []domain.Transaction) error
}

type Request struct {
	OrganizationID string
	Title          string
	Description    string
	FundsUsed      int64
	PeopleImpacted int64
}

type Service struct {
	store   *ledger.Store
	catalog *catalog.Catalog
	archive Archive
	ids     *ident.Generator
}

func New(store *ledger.Store, cat *catalog.Catalog, archive Archive) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		archive: archive,
		ids:     ident.New(),
	}
}

// RecordImpact validates and appends an impact update with its disbursement
// and impact transactions. Unlike donations there is no settlement staging:
// the append is direct and synchronous, and no wallet is touched.
func (s *Service) RecordImpact(ctx context.Context, req Request) (*domain.ImpactUpdate, error) {
	if req.Title == "" || req.Description == "" {
		return nil, ErrInvalidDisbursement
	}
	if req.FundsUsed < 0 || req.PeopleImpacted < 0 {
		return nil, ErrInvalidDisbursement
	}
	org, err := s.catalog.Get(req.OrganizationID)
	if err != nil {
		return nil, err
	}

	update := domain.ImpactUpdate{
		ID:               s.ids.Next(ident.PrefixImpactUpdate),
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		Title:            req.Title,
		Description:      req.Description,
		FundsUsed:        req.FundsUsed,
		PeopleImpacted:   req.PeopleImpacted,
		Timestamp:        time.Now(),
	}
	txs := s.store.AppendDisbursement(update, s.ids.Next(ident.PrefixImpactEntry))

	if err := s.archive.AppendDisbursement(ctx, update, txs); err != nil {
		zap.L().Error("failed to archive disbursement",
			zap.String("updateID", update.ID),
			zap.Error(err),
		)
	}

	zap.L().Info("impact update recorded",
		zap.String("updateID", update.ID),
		zap.String("organization", update.OrganizationID),
		zap.Int64("fundsUsed", update.FundsUsed),
		zap.Int64("peopleImpacted", update.PeopleImpacted),
	)
	return &update, nil
}

func (s *Service) ImpactUpdates(ctx context.Context) []domain.ImpactUpdate {
	return s.store.ListImpactUpdates()
}

// RecentImpactUpdates returns up to n updates, newest first.
func (s *Service) RecentImpactUpdates(ctx context.Context, n int) []domain.ImpactUpdate {
	return s.store.ListRecentImpactUpdates(n)
}
