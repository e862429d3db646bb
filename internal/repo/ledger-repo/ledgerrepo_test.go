package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_AppendDonation(t *testing.T) {
	repo, mock, tx := NewMock(t)

	now := time.Now()
	donation := domain.Donation{
		ID:               "TX1",
		DonorID:          1,
		OrganizationID:   "education",
		OrganizationName: "Education for All",
		Amount:           100,
		DonorName:        "Sarah",
		Status:           domain.DonationStatusCompleted,
		Timestamp:        now,
	}
	transaction := domain.Transaction{
		ID:               "TX1",
		Kind:             domain.KindDonation,
		OrganizationID:   "education",
		OrganizationName: "Education for All",
		Amount:           100,
		Description:      "Donation from Sarah",
		DonorName:        "Sarah",
		Timestamp:        now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Archives donation and transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO donations`)).
						WithArgs("TX1", 1, "education", "Education for All", int64(100), "Sarah", "", domain.DonationStatusCompleted, now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
						WithArgs("TX1", domain.KindDonation, "education", "Education for All", int64(100), "Donation from Sarah", "Sarah", now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error rolls the unit back",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO donations`)).
						WithArgs("TX1", 1, "education", "Education for All", int64(100), "Sarah", "", domain.DonationStatusCompleted, now).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AppendDonation(context.Background(), donation, transaction)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_AppendDisbursement(t *testing.T) {
	repo, mock, tx := NewMock(t)

	now := time.Now()
	update := domain.ImpactUpdate{
		ID:               "UP1",
		OrganizationID:   "education",
		OrganizationName: "Education for All",
		Title:            "School Supplies Distributed",
		Description:      "Provided textbooks",
		FundsUsed:        1200,
		PeopleImpacted:   200,
		Timestamp:        now,
	}
	txs := []domain.Transaction{
		{ID: "UP1", Kind: domain.KindDisbursement, OrganizationID: "education", OrganizationName: "Education for All", Amount: 1200, Description: "School Supplies Distributed", Timestamp: now},
		{ID: "IM1", Kind: domain.KindImpact, OrganizationID: "education", OrganizationName: "Education for All", Amount: 0, Description: "200 people helped - School Supplies Distributed", Timestamp: now},
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO impact_updates`)).
			WithArgs("UP1", "education", "Education for All", "School Supplies Distributed", "Provided textbooks", int64(1200), int64(200), now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
			WithArgs("UP1", domain.KindDisbursement, "education", "Education for All", int64(1200), "School Supplies Distributed", "", now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
			WithArgs("IM1", domain.KindImpact, "education", "Education for All", int64(0), "200 people helped - School Supplies Distributed", "", now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		return fn(ctx)
	})

	err := repo.AppendDisbursement(context.Background(), update, txs)
	assert.NoError(t, err)
}

func TestRepository_LoadAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	mock.MatchExpectationsInOrder(false)

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM donations`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "donor_id", "organization_id", "organization_name", "amount", "donor_name", "message", "status", "created_at"}).
			AddRow("TX1", 1, "education", "Education for All", int64(100), "Sarah", "", domain.DonationStatusCompleted, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM impact_updates`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "organization_name", "title", "description", "funds_used", "people_impacted", "created_at"}).
			AddRow("UP1", "education", "Education for All", "Title", "Desc", int64(1200), int64(200), now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "kind", "organization_id", "organization_name", "amount", "description", "donor_name", "created_at"}).
			AddRow("TX1", domain.KindDonation, "education", "Education for All", int64(100), "Donation from Sarah", "Sarah", now).
			AddRow("UP1", domain.KindDisbursement, "education", "Education for All", int64(1200), "Title", "", now))

	donations, updates, transactions, err := repo.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, donations, 1)
	assert.Len(t, updates, 1)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "TX1", transactions[0].ID)
	assert.Equal(t, "UP1", transactions[1].ID)
}

func TestRepository_LoadAllError(t *testing.T) {
	repo, mock, _ := NewMock(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM donations`)).
		WillReturnError(errors.New("database error"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM impact_updates`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "organization_name", "title", "description", "funds_used", "people_impacted", "created_at"}))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "kind", "organization_id", "organization_name", "amount", "description", "donor_name", "created_at"}))

	_, _, _, err := repo.LoadAll(context.Background())
	assert.Error(t, err)
}
