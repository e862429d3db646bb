package donations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/dto"
	"github.com/aidchain/aidchain/internal/settlement"
	"github.com/aidchain/aidchain/pkg/auth"
	"github.com/aidchain/aidchain/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DonationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(req *http.Request, donorID int) *http.Request {
	ctx := context.WithValue(req.Context(), auth.AccountIDKey, donorID)
	return req.WithContext(ctx)
}

func TestDonateHandler(t *testing.T) {
	handler, service := NewMock(t)

	staged := settlement.Snapshot{
		ID:           "TXABC123",
		DonorID:      1,
		State:        settlement.StateStaged,
		Phases:       settlement.Phases,
		Organization: "Clean Water Initiative",
		Amount:       250,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Settlement staged",
			body: `{"organization_id":"clean-water","amount":250,"donor_name":"Jordan Lee","message":"hi"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), settlement.Request{
						DonorID:        1,
						OrganizationID: "clean-water",
						Amount:         250,
						DonorName:      "Jordan Lee",
						Message:        "hi",
					}).
					Return(staged, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Invalid request body",
			body: `{invalid`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Non-positive amount",
			body: `{"organization_id":"clean-water","amount":0,"donor_name":"Jordan Lee"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(settlement.Snapshot{}, settlement.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be a positive integer",
		},
		{
			name: "Unknown organization",
			body: `{"organization_id":"nope","amount":10,"donor_name":"Jordan Lee"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(settlement.Snapshot{}, catalog.ErrUnknownOrganization)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "unknown organization",
		},
		{
			name: "Insufficient balance",
			body: `{"organization_id":"clean-water","amount":999999,"donor_name":"Jordan Lee"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(settlement.Snapshot{}, settlement.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient wallet balance",
		},
		{
			name: "Settlement already in progress",
			body: `{"organization_id":"clean-water","amount":10,"donor_name":"Jordan Lee"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(settlement.Snapshot{}, settlement.ErrSettlementInProgress)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "settlement already in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authed(httptest.NewRequest("POST", "/api/donations", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Donate(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.SettlementResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, staged.ID, resp.ID)
				assert.Equal(t, string(staged.State), resp.State)
				assert.Equal(t, staged.Amount, resp.Amount)
			}
		})
	}
}

func TestGetSettlementHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns snapshot", func(t *testing.T) {
		service.EXPECT().
			SettlementStatus(gomock.Any(), 1).
			Return(settlement.Snapshot{
				ID:              "TXABC123",
				DonorID:         1,
				State:           settlement.StateCommitted,
				Phases:          settlement.Phases,
				PhasesCompleted: len(settlement.Phases),
				Organization:    "Clean Water Initiative",
				Amount:          250,
			}, nil)

		req := authed(httptest.NewRequest("GET", "/api/donations/settlement", nil), 1)
		rr := httptest.NewRecorder()

		handler.GetSettlement(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.SettlementResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "committed", resp.State)
		assert.Equal(t, len(settlement.Phases), resp.PhasesCompleted)
	})

	t.Run("No settlement for donor", func(t *testing.T) {
		service.EXPECT().
			SettlementStatus(gomock.Any(), 1).
			Return(settlement.Snapshot{}, settlement.ErrNoSettlement)

		req := authed(httptest.NewRequest("GET", "/api/donations/settlement", nil), 1)
		rr := httptest.NewRecorder()

		handler.GetSettlement(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCancelSettlementHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Canceled", func(t *testing.T) {
		service.EXPECT().CancelSettlement(gomock.Any(), 1).Return(nil)

		req := authed(httptest.NewRequest("DELETE", "/api/donations/settlement", nil), 1)
		rr := httptest.NewRecorder()

		handler.CancelSettlement(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not cancellable", func(t *testing.T) {
		service.EXPECT().CancelSettlement(gomock.Any(), 1).Return(settlement.ErrNotCancellable)

		req := authed(httptest.NewRequest("DELETE", "/api/donations/settlement", nil), 1)
		rr := httptest.NewRecorder()

		handler.CancelSettlement(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "settlement is not cancellable", resp.Message)
	})
}

func TestGetDonationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	service.EXPECT().
		Donations(gomock.Any(), 1).
		Return([]domain.Donation{
			{
				ID:               "TXABC123",
				DonorID:          1,
				OrganizationID:   "clean-water",
				OrganizationName: "Clean Water Initiative",
				Amount:           250,
				DonorName:        "Jordan Lee",
				Status:           domain.DonationStatusCompleted,
				Timestamp:        now,
			},
		})

	req := authed(httptest.NewRequest("GET", "/api/donations", nil), 1)
	rr := httptest.NewRecorder()

	handler.GetDonations(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.DonationResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "TXABC123", resp[0].ID)
	assert.Equal(t, "completed", resp[0].Status)
	assert.True(t, now.Equal(resp[0].Timestamp))
}

func TestGetMetricsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Metrics(gomock.Any(), 1).
		Return(domain.AccountMetrics{
			WalletBalance:          4750,
			TotalDonated:           250,
			OrganizationsSupported: 1,
			PeopleHelped:           1250,
			ImpactScore:            12,
		})

	req := authed(httptest.NewRequest("GET", "/api/account/metrics", nil), 1)
	rr := httptest.NewRecorder()

	handler.GetMetrics(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.AccountMetricsResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(4750), resp.WalletBalance)
	assert.Equal(t, int64(1250), resp.PeopleHelped)
	assert.Equal(t, int64(12), resp.ImpactScore)
}

func TestGetOrganizationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Organizations(gomock.Any()).
		Return([]domain.Organization{
			{ID: "clean-water", Name: "Clean Water Initiative", ImpactPerUnit: 5, TransparencyScore: 98},
			{ID: "education", Name: "Education for All", ImpactPerUnit: 2, TransparencyScore: 95},
			{ID: "healthcare", Name: "Healthcare Access", ImpactPerUnit: 3, TransparencyScore: 97},
		})

	req := httptest.NewRequest("GET", "/api/organizations", nil)
	rr := httptest.NewRecorder()

	handler.GetOrganizations(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.OrganizationResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 3)
	assert.Equal(t, "clean-water", resp[0].ID)
	assert.Equal(t, 98, resp[0].TransparencyScore)
}
