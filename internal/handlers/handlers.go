package handlers

import (
	"net/http"

	_ "github.com/aidchain/aidchain/docs"
	"github.com/aidchain/aidchain/internal/domain"
	authhandlers "github.com/aidchain/aidchain/internal/handlers/auth"
	donationshandlers "github.com/aidchain/aidchain/internal/handlers/donations"
	impacthandlers "github.com/aidchain/aidchain/internal/handlers/impact"
	ledgerhandlers "github.com/aidchain/aidchain/internal/handlers/ledger"
	"github.com/aidchain/aidchain/internal/service"
	"github.com/aidchain/aidchain/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	GetDonations(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	CancelSettlement(w http.ResponseWriter, r *http.Request)
	GetMetrics(w http.ResponseWriter, r *http.Request)
	GetOrganizations(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ImpactHandler interface {
	RecordImpact(w http.ResponseWriter, r *http.Request)
	GetImpactUpdates(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	DonationHandler DonationHandler
	LedgerHandler   LedgerHandler
	ImpactHandler   ImpactHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		DonationHandler: donationshandlers.New(s.DonationService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		ImpactHandler:   impacthandlers.New(s.ImpactService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Get("/organizations", h.DonationHandler.GetOrganizations)
		r.Get("/ledger/transactions", h.LedgerHandler.GetTransactions)
		r.Get("/impact-updates", h.ImpactHandler.GetImpactUpdates)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(string(domain.RoleDonor)))
				r.Route("/donations", func(r chi.Router) {
					r.Post("/", h.DonationHandler.Donate)
					r.Get("/", h.DonationHandler.GetDonations)
					r.Route("/settlement", func(r chi.Router) {
						r.Get("/", h.DonationHandler.GetSettlement)
						r.Delete("/", h.DonationHandler.CancelSettlement)
					})
				})
				r.Get("/account/metrics", h.DonationHandler.GetMetrics)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(string(domain.RoleAdmin)))
				r.Post("/impact-updates", h.ImpactHandler.RecordImpact)
			})
		})
	})

	return r
}
