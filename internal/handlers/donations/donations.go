package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/dto"
	"github.com/aidchain/aidchain/internal/settlement"
	"github.com/aidchain/aidchain/pkg/auth"
	"github.com/aidchain/aidchain/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, req settlement.Request) (settlement.Snapshot, error)
	SettlementStatus(ctx context.Context, donorID int) (settlement.Snapshot, error)
	CancelSettlement(ctx context.Context, donorID int) error
	Metrics(ctx context.Context, donorID int) domain.AccountMetrics
	Donations(ctx context.Context, donorID int) []domain.Donation
	Organizations(ctx context.Context) []domain.Organization
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Donate godoc
//
//	@Summary		Submit a donation
//	@Description	Stage a donation settlement for the authenticated donor. The settlement completes asynchronously; poll the settlement endpoint for progress.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DonateRequestDTO	true	"Donation request payload"
//	@Success		202		{object}	dto.SettlementResponseDTO	"Settlement staged"
//	@Failure		400		{object}	utils.Response	"Invalid amount or donor name"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		409		{object}	utils.Response	"Settlement already in progress"
//	@Failure		422		{object}	utils.Response	"Unknown organization"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	donorID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := h.donationService.Submit(r.Context(), settlement.Request{
		DonorID:        donorID,
		OrganizationID: req.OrganizationID,
		Amount:         req.Amount,
		DonorName:      req.DonorName,
		Message:        req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidAmount), errors.Is(err, settlement.ErrInvalidDonor):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrUnknownOrganization):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, settlement.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, settlement.ErrSettlementInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusAccepted, settlementDTO(snapshot))
}

// GetSettlement godoc
//
//	@Summary		Get settlement status
//	@Description	Return the donor's in-flight settlement, or the most recently finished one.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettlementResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No settlement for donor"
//	@Router			/api/donations/settlement [get]
func (h *DonationHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	donorID := r.Context().Value(auth.AccountIDKey).(int)

	snapshot, err := h.donationService.SettlementStatus(r.Context(), donorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTO(snapshot))
}

// CancelSettlement godoc
//
//	@Summary		Cancel the in-flight settlement
//	@Description	Abort the donor's staged or finalizing settlement. Committed settlements cannot be canceled.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Settlement canceled"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Settlement is not cancellable"
//	@Router			/api/donations/settlement [delete]
func (h *DonationHandler) CancelSettlement(w http.ResponseWriter, r *http.Request) {
	donorID := r.Context().Value(auth.AccountIDKey).(int)

	if err := h.donationService.CancelSettlement(r.Context(), donorID); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Settlement canceled"})
}

// GetDonations godoc
//
//	@Summary		Get donation history
//	@Description	Return the authenticated donor's committed donations in insertion order.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DonationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/donations [get]
func (h *DonationHandler) GetDonations(w http.ResponseWriter, r *http.Request) {
	donorID := r.Context().Value(auth.AccountIDKey).(int)

	donations := h.donationService.Donations(r.Context(), donorID)
	response := make([]dto.DonationResponseDTO, len(donations))
	for i, d := range donations {
		response[i] = dto.DonationResponseDTO{
			ID:               d.ID,
			OrganizationID:   d.OrganizationID,
			OrganizationName: d.OrganizationName,
			Amount:           d.Amount,
			DonorName:        d.DonorName,
			Message:          d.Message,
			Status:           d.Status,
			Timestamp:        d.Timestamp,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMetrics godoc
//
//	@Summary		Get account metrics
//	@Description	Return the donor's derived aggregates: wallet balance, total donated, organizations supported, people helped and impact score.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountMetricsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/account/metrics [get]
func (h *DonationHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	donorID := r.Context().Value(auth.AccountIDKey).(int)

	m := h.donationService.Metrics(r.Context(), donorID)
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountMetricsResponseDTO{
		WalletBalance:          m.WalletBalance,
		TotalDonated:           m.TotalDonated,
		OrganizationsSupported: m.OrganizationsSupported,
		PeopleHelped:           m.PeopleHelped,
		ImpactScore:            m.ImpactScore,
	})
}

// GetOrganizations godoc
//
//	@Summary		List organizations
//	@Description	Return the organization catalog in registry order.
//	@Tags			Donations
//	@Produce		json
//	@Success		200	{array}	dto.OrganizationResponseDTO
//	@Router			/api/organizations [get]
func (h *DonationHandler) GetOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs := h.donationService.Organizations(r.Context())
	response := make([]dto.OrganizationResponseDTO, len(orgs))
	for i, org := range orgs {
		response[i] = dto.OrganizationResponseDTO{
			ID:                org.ID,
			Name:              org.Name,
			Description:       org.Description,
			ImpactPerUnit:     org.ImpactPerUnit,
			TransparencyScore: org.TransparencyScore,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func settlementDTO(s settlement.Snapshot) dto.SettlementResponseDTO {
	return dto.SettlementResponseDTO{
		ID:              s.ID,
		State:           string(s.State),
		Phases:          s.Phases,
		PhasesCompleted: s.PhasesCompleted,
		Organization:    s.Organization,
		Amount:          s.Amount,
	}
}
