// Package ledgerrepo mirrors ledger commits into Postgres so the in-memory
// store can be rebuilt across restarts. Rows carry a bigserial seq, and every
// reload reads in seq order, so the archive round-trips the ledger's
// insertion-order guarantee.
package ledgerrepo

import (
	"context"

	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const (
	insertDonationQuery = `
		INSERT INTO donations (id, donor_id, organization_id, organization_name, amount, donor_name, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	insertImpactUpdateQuery = `
		INSERT INTO impact_updates (id, organization_id, organization_name, title, description, funds_used, people_impacted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	insertTransactionQuery = `
		INSERT INTO transactions (id, kind, organization_id, organization_name, amount, description, donor_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
)

// AppendDonation archives a committed donation and its paired transaction in
// one database transaction.
func (r *Repository) AppendDonation(ctx context.Context, d domain.Donation, tx domain.Transaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, insertDonationQuery,
			d.ID, d.DonorID, d.OrganizationID, d.OrganizationName, d.Amount, d.DonorName, d.Message, d.Status, d.Timestamp,
		); err != nil {
			zap.L().Error("can't archive donation", zap.Error(err))
			return err
		}
		if err := r.insertTransaction(ctx, tx); err != nil {
			return err
		}
		return nil
	})
}

// AppendDisbursement archives an impact update with its disbursement and
// impact transactions in one database transaction.
func (r *Repository) AppendDisbursement(ctx context.Context, u domain.ImpactUpdate, txs []domain.Transaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, insertImpactUpdateQuery,
			u.ID, u.OrganizationID, u.OrganizationName, u.Title, u.Description, u.FundsUsed, u.PeopleImpacted, u.Timestamp,
		); err != nil {
			zap.L().Error("can't archive impact update", zap.Error(err))
			return err
		}
		for _, tx := range txs {
			if err := r.insertTransaction(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) insertTransaction(ctx context.Context, tx domain.Transaction) error {
	if _, err := r.db.Exec(ctx, insertTransactionQuery,
		tx.ID, tx.Kind, tx.OrganizationID, tx.OrganizationName, tx.Amount, tx.Description, tx.DonorName, tx.Timestamp,
	); err != nil {
		zap.L().Error("can't archive transaction", zap.Error(err))
		return err
	}
	return nil
}

// LoadAll reads the archived collections, each ordered by seq. The three
// reads fan out concurrently; ordering within each collection is what the
// in-memory store needs to rebuild faithfully.
func (r *Repository) LoadAll(ctx context.Context) ([]domain.Donation, []domain.ImpactUpdate, []domain.Transaction, error) {
	var (
		donations    []domain.Donation
		updates      []domain.ImpactUpdate
		transactions []domain.Transaction
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		donations, err = r.loadDonations(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		updates, err = r.loadImpactUpdates(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = r.loadTransactions(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return donations, updates, transactions, nil
}

func (r *Repository) loadDonations(ctx context.Context) ([]domain.Donation, error) {
	query := `
        SELECT id, donor_id, organization_id, organization_name, amount, donor_name, message, status, created_at
        FROM donations
        ORDER BY seq
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to load archived donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		err := rows.Scan(&d.ID, &d.DonorID, &d.OrganizationID, &d.OrganizationName, &d.Amount, &d.DonorName, &d.Message, &d.Status, &d.Timestamp)
		if err != nil {
			zap.L().Error("failed to scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, rows.Err()
}

func (r *Repository) loadImpactUpdates(ctx context.Context) ([]domain.ImpactUpdate, error) {
	query := `
        SELECT id, organization_id, organization_name, title, description, funds_used, people_impacted, created_at
        FROM impact_updates
        ORDER BY seq
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to load archived impact updates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var updates []domain.ImpactUpdate
	for rows.Next() {
		var u domain.ImpactUpdate
		err := rows.Scan(&u.ID, &u.OrganizationID, &u.OrganizationName, &u.Title, &u.Description, &u.FundsUsed, &u.PeopleImpacted, &u.Timestamp)
		if err != nil {
			zap.L().Error("failed to scan impact update row", zap.Error(err))
			return nil, err
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}

func (r *Repository) loadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT id, kind, organization_id, organization_name, amount, description, donor_name, created_at
        FROM transactions
        ORDER BY seq
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to load archived transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.Kind, &tx.OrganizationID, &tx.OrganizationName, &tx.Amount, &tx.Description, &tx.DonorName, &tx.Timestamp)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
