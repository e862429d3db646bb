package repo

import (
	"github.com/aidchain/aidchain/internal/pg"
	ledgerrepo "github.com/aidchain/aidchain/internal/repo/ledger-repo"
	userrepo "github.com/aidchain/aidchain/internal/repo/user-repo"
	"github.com/aidchain/aidchain/internal/service/authservice"
)

type Repositories struct {
	UserRepo authservice.Repo

	// LedgerArchive serves both services' Archive interfaces and the app's
	// warm start, hence the concrete type.
	LedgerArchive *ledgerrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	ledgerArchive := ledgerrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:      userRepo,
		LedgerArchive: ledgerArchive,
	}
}
