package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/aidchain/aidchain/docs"
	authhandlers "github.com/aidchain/aidchain/internal/handlers/auth"
	donationshandlers "github.com/aidchain/aidchain/internal/handlers/donations"
	impacthandlers "github.com/aidchain/aidchain/internal/handlers/impact"
	"github.com/aidchain/aidchain/internal/ledger"
	"github.com/aidchain/aidchain/internal/service"
	"github.com/aidchain/aidchain/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     authhandlers.NewMockService(ctrl),
		DonationService: donationshandlers.NewMockService(ctrl),
		ImpactService:   impacthandlers.NewMockService(ctrl),
		LedgerService:   ledger.NewStore(),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDonationHandler := NewMockDonationHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockImpactHandler := NewMockImpactHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().Donate(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().GetDonations(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().GetSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().CancelSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().GetMetrics(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().GetOrganizations(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockImpactHandler.EXPECT().RecordImpact(gomock.Any(), gomock.Any()).AnyTimes()
	mockImpactHandler.EXPECT().GetImpactUpdates(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		DonationHandler: mockDonationHandler,
		LedgerHandler:   mockLedgerHandler,
		ImpactHandler:   mockImpactHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	donorToken, err := jwtService.GenerateJWT(1, "donor", time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(2, "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"GET", "/api/organizations", "", http.StatusOK},
		{"GET", "/api/ledger/transactions", "", http.StatusOK},
		{"GET", "/api/impact-updates", "", http.StatusOK},

		{"POST", "/api/donations", "", http.StatusUnauthorized},
		{"GET", "/api/donations", "", http.StatusUnauthorized},
		{"GET", "/api/donations/settlement", "", http.StatusUnauthorized},
		{"DELETE", "/api/donations/settlement", "", http.StatusUnauthorized},
		{"GET", "/api/account/metrics", "", http.StatusUnauthorized},
		{"POST", "/api/impact-updates", "", http.StatusUnauthorized},

		{"POST", "/api/donations", donorToken, http.StatusOK},
		{"GET", "/api/account/metrics", donorToken, http.StatusOK},
		{"POST", "/api/impact-updates", donorToken, http.StatusForbidden},
		{"POST", "/api/impact-updates", adminToken, http.StatusOK},
		{"POST", "/api/donations", adminToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
