package service

import (
	"time"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/handlers/auth"
	"github.com/aidchain/aidchain/internal/handlers/donations"
	"github.com/aidchain/aidchain/internal/handlers/impact"
	ledgerhandlers "github.com/aidchain/aidchain/internal/handlers/ledger"

	pkgauth "github.com/aidchain/aidchain/pkg/auth"

	"github.com/aidchain/aidchain/internal/ledger"
	"github.com/aidchain/aidchain/internal/repo"
	authservice "github.com/aidchain/aidchain/internal/service/authservice"
	donationservice "github.com/aidchain/aidchain/internal/service/donationservice"
	impactservice "github.com/aidchain/aidchain/internal/service/impactservice"
)

type Services struct {
	AuthService     auth.Service
	DonationService donations.Service
	ImpactService   impact.Service
	LedgerService   ledgerhandlers.Service
}

type Options struct {
	WalletAllowance int64
	SettlementPhase time.Duration
	TokenTTL        time.Duration
}

func New(repo *repo.Repositories, store *ledger.Store, cat *catalog.Catalog, opts Options) *Services {
	donationService := donationservice.New(store, cat, repo.LedgerArchive, opts.WalletAllowance, opts.SettlementPhase)
	impactService := impactservice.New(store, cat, repo.LedgerArchive)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, opts.TokenTTL)

	return &Services{
		AuthService:     authService,
		DonationService: donationService,
		ImpactService:   impactService,
		LedgerService:   store,
	}
}
