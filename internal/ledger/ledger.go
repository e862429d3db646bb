// Package ledger holds the append-only collections the rest of the system
// treats as the source of truth: donations, impact updates and the unified
// transaction sequence. Entries are never mutated or removed once appended,
// and transaction order is insertion order.
package ledger

import (
	"fmt"
	"sync"

	"github.com/aidchain/aidchain/internal/domain"
)

// Store guards all three collections with one lock so a donation and its
// paired transaction (or a disbursement triple) become visible together.
type Store struct {
	mu           sync.RWMutex
	donations    []domain.Donation
	updates      []domain.ImpactUpdate
	transactions []domain.Transaction
}

// Filter narrows ListTransactions. Zero fields match everything; set fields
// combine with AND.
type Filter struct {
	OrganizationID string
	Kind           domain.TransactionKind
}

func NewStore() *Store {
	return &Store{}
}

// AppendDonation appends the donation and its donation-kind transaction as
// one unit and returns the appended transaction. The transaction carries the
// same id, amount and organization snapshot as the donation.
func (s *Store) AppendDonation(d domain.Donation) domain.Transaction {
	tx := domain.Transaction{
		ID:               d.ID,
		Kind:             domain.KindDonation,
		OrganizationID:   d.OrganizationID,
		OrganizationName: d.OrganizationName,
		Amount:           d.Amount,
		Description:      fmt.Sprintf("Donation from %s", d.DonorName),
		DonorName:        d.DonorName,
		Timestamp:        d.Timestamp,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.donations = append(s.donations, d)
	s.transactions = append(s.transactions, tx)
	return tx
}

// AppendDisbursement appends the impact update, a disbursement transaction
// reusing the update id, and a zero-amount impact transaction under
// impactTxID. All three land atomically; the two transactions are returned in
// ledger order.
func (s *Store) AppendDisbursement(u domain.ImpactUpdate, impactTxID string) []domain.Transaction {
	txs := []domain.Transaction{
		{
			ID:               u.ID,
			Kind:             domain.KindDisbursement,
			OrganizationID:   u.OrganizationID,
			OrganizationName: u.OrganizationName,
			Amount:           u.FundsUsed,
			Description:      u.Title,
			Timestamp:        u.Timestamp,
		},
		{
			ID:               impactTxID,
			Kind:             domain.KindImpact,
			OrganizationID:   u.OrganizationID,
			OrganizationName: u.OrganizationName,
			Amount:           0,
			Description:      fmt.Sprintf("%d people helped - %s", u.PeopleImpacted, u.Title),
			Timestamp:        u.Timestamp,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = append(s.updates, u)
	s.transactions = append(s.transactions, txs...)
	return txs
}

// Load replaces the collections wholesale. Used once at startup to rebuild
// the store from the durable archive; archived entries are replayed verbatim
// so reload preserves both order and field fidelity.
func (s *Store) Load(donations []domain.Donation, updates []domain.ImpactUpdate, transactions []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.donations = append([]domain.Donation(nil), donations...)
	s.updates = append([]domain.ImpactUpdate(nil), updates...)
	s.transactions = append([]domain.Transaction(nil), transactions...)
}

func (s *Store) ListTransactions(f Filter) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if f.OrganizationID != "" && tx.OrganizationID != f.OrganizationID {
			continue
		}
		if f.Kind != "" && tx.Kind != f.Kind {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func (s *Store) ListDonations() []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Donation(nil), s.donations...)
}

func (s *Store) ListDonationsByDonor(donorID int) []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Donation
	for _, d := range s.donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) ListImpactUpdates() []domain.ImpactUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ImpactUpdate(nil), s.updates...)
}

// ListRecentImpactUpdates returns up to n updates, newest first.
func (s *Store) ListRecentImpactUpdates(n int) []domain.ImpactUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(s.updates) {
		n = len(s.updates)
	}
	out := make([]domain.ImpactUpdate, 0, n)
	for i := len(s.updates) - 1; i >= len(s.updates)-n; i-- {
		out = append(out, s.updates[i])
	}
	return out
}

// Sizes reports collection lengths, used to assert that rejected operations
// left the store untouched.
func (s *Store) Sizes() (donations, updates, transactions int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.donations), len(s.updates), len(s.transactions)
}
