package impactservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchive struct {
	updates []domain.ImpactUpdate
	txs     [][]domain.Transaction
	err     error
}

func (f *fakeArchive) AppendDisbursement(ctx context.Context, u domain.ImpactUpdate, txs []domain.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, u)
	f.txs = append(f.txs, txs)
	return nil
}

func newService() (*Service, *ledger.Store, *fakeArchive) {
	store := ledger.NewStore()
	archive := &fakeArchive{}
	return New(store, catalog.New(), archive), store, archive
}

func TestRecordImpact(t *testing.T) {
	valid := Request{
		OrganizationID: "education",
		Title:          "New school supplies",
		Description:    "Purchased textbooks for three classrooms",
		FundsUsed:      1200,
		PeopleImpacted: 90,
	}

	tests := []struct {
		name          string
		req           Request
		expectedError error
	}{
		{name: "Valid disbursement", req: valid},
		{
			name:          "Missing title",
			req:           Request{OrganizationID: "education", Description: "d", FundsUsed: 1, PeopleImpacted: 1},
			expectedError: ErrInvalidDisbursement,
		},
		{
			name:          "Missing description",
			req:           Request{OrganizationID: "education", Title: "t", FundsUsed: 1, PeopleImpacted: 1},
			expectedError: ErrInvalidDisbursement,
		},
		{
			name:          "Negative funds",
			req:           Request{OrganizationID: "education", Title: "t", Description: "d", FundsUsed: -1},
			expectedError: ErrInvalidDisbursement,
		},
		{
			name:          "Negative people",
			req:           Request{OrganizationID: "education", Title: "t", Description: "d", PeopleImpacted: -1},
			expectedError: ErrInvalidDisbursement,
		},
		{
			name:          "Unknown organization",
			req:           Request{OrganizationID: "nope", Title: "t", Description: "d"},
			expectedError: catalog.ErrUnknownOrganization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, _ := newService()

			update, err := service.RecordImpact(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, update)
				_, _, txCount := store.Sizes()
				assert.Zero(t, txCount, "rejected disbursement must not touch the ledger")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, update)
			assert.True(t, strings.HasPrefix(update.ID, "UP"))
			assert.Equal(t, "Education for All", update.OrganizationName)
			assert.Equal(t, tt.req.FundsUsed, update.FundsUsed)

			txs := store.ListTransactions(ledger.Filter{})
			require.Len(t, txs, 2)
			assert.Equal(t, domain.KindDisbursement, txs[0].Kind)
			assert.Equal(t, update.ID, txs[0].ID)
			assert.Equal(t, tt.req.Title, txs[0].Description)
			assert.Equal(t, domain.KindImpact, txs[1].Kind)
			assert.True(t, strings.HasPrefix(txs[1].ID, "IM"))
			assert.Equal(t, "90 people helped - New school supplies", txs[1].Description)
		})
	}
}

func TestRecordImpactArchivesCommit(t *testing.T) {
	service, _, archive := newService()

	update, err := service.RecordImpact(context.Background(), Request{
		OrganizationID: "healthcare",
		Title:          "Mobile clinic",
		Description:    "Ran a vaccination drive",
		FundsUsed:      800,
		PeopleImpacted: 200,
	})
	require.NoError(t, err)

	require.Len(t, archive.updates, 1)
	assert.Equal(t, update.ID, archive.updates[0].ID)
	require.Len(t, archive.txs, 1)
	assert.Len(t, archive.txs[0], 2)
}

func TestRecordImpactSurvivesArchiveFailure(t *testing.T) {
	store := ledger.NewStore()
	service := New(store, catalog.New(), &fakeArchive{err: errors.New("archive down")})

	update, err := service.RecordImpact(context.Background(), Request{
		OrganizationID: "clean-water",
		Title:          "Well repairs",
		Description:    "Fixed two village wells",
		FundsUsed:      300,
		PeopleImpacted: 40,
	})
	require.NoError(t, err)
	require.NotNil(t, update)

	// archive is a mirror: the in-memory ledger keeps the entries
	_, updateCount, txCount := store.Sizes()
	assert.Equal(t, 1, updateCount)
	assert.Equal(t, 2, txCount)
}

func TestImpactUpdateListings(t *testing.T) {
	service, _, _ := newService()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := service.RecordImpact(context.Background(), Request{
			OrganizationID: "education",
			Title:          title,
			Description:    "d",
			FundsUsed:      10,
			PeopleImpacted: 1,
		})
		require.NoError(t, err)
	}

	all := service.ImpactUpdates(context.Background())
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "third", all[2].Title)

	recent := service.RecentImpactUpdates(context.Background(), 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Title)
	assert.Equal(t, "second", recent[1].Title)
}
