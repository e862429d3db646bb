package impact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aidchain/aidchain/internal/catalog"
	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/dto"
	"github.com/aidchain/aidchain/internal/service/impactservice"
	"github.com/aidchain/aidchain/pkg/utils"
)

type Service interface {
	RecordImpact(ctx context.Context, req impactservice.Request) (*domain.ImpactUpdate, error)
	ImpactUpdates(ctx context.Context) []domain.ImpactUpdate
	RecentImpactUpdates(ctx context.Context, n int) []domain.ImpactUpdate
}

type ImpactHandler struct {
	impactService Service
}

func New(impactService Service) *ImpactHandler {
	return &ImpactHandler{
		impactService: impactService,
	}
}

// RecordImpact godoc
//
//	@Summary		Record an impact update
//	@Description	Record a funds disbursement with its impact outcome. Appends a disbursement and an impact line to the ledger.
//	@Tags			Impact
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordImpactRequestDTO	true	"Impact update payload"
//	@Success		201		{object}	dto.ImpactUpdateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid disbursement"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		422		{object}	utils.Response	"Unknown organization"
//	@Router			/api/impact-updates [post]
func (h *ImpactHandler) RecordImpact(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordImpactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := h.impactService.RecordImpact(r.Context(), impactservice.Request{
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		FundsUsed:      req.FundsUsed,
		PeopleImpacted: req.PeopleImpacted,
	})
	if err != nil {
		switch {
		case errors.Is(err, impactservice.ErrInvalidDisbursement):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrUnknownOrganization):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, updateDTO(*update))
}

// GetImpactUpdates godoc
//
//	@Summary		List impact updates
//	@Description	Return impact updates in insertion order, or the N most recent newest-first with ?recent=N.
//	@Tags			Impact
//	@Produce		json
//	@Param			recent	query		int	false	"Return only the N most recent updates, newest first"	example(3)
//	@Success		200		{array}		dto.ImpactUpdateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid recent parameter"
//	@Router			/api/impact-updates [get]
func (h *ImpactHandler) GetImpactUpdates(w http.ResponseWriter, r *http.Request) {
	var updates []domain.ImpactUpdate
	if raw := r.URL.Query().Get("recent"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid recent parameter")
			return
		}
		updates = h.impactService.RecentImpactUpdates(r.Context(), n)
	} else {
		updates = h.impactService.ImpactUpdates(r.Context())
	}

	response := make([]dto.ImpactUpdateResponseDTO, len(updates))
	for i, u := range updates {
		response[i] = updateDTO(u)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func updateDTO(u domain.ImpactUpdate) dto.ImpactUpdateResponseDTO {
	return dto.ImpactUpdateResponseDTO{
		ID:               u.ID,
		OrganizationID:   u.OrganizationID,
		OrganizationName: u.OrganizationName,
		Title:            u.Title,
		Description:      u.Description,
		FundsUsed:        u.FundsUsed,
		PeopleImpacted:   u.PeopleImpacted,
		Timestamp:        u.Timestamp,
	}
}
