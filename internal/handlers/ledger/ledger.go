package ledger

import (
	"net/http"

	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/dto"
	ledgerstore "github.com/aidchain/aidchain/internal/ledger"
	"github.com/aidchain/aidchain/pkg/utils"
)

type Service interface {
	ListTransactions(f ledgerstore.Filter) []domain.Transaction
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetTransactions godoc
//
//	@Summary		List ledger transactions
//	@Description	Return ledger transactions in insertion order, optionally filtered by organization and kind. Filters combine conjunctively.
//	@Tags			Ledger
//	@Produce		json
//	@Param			org		query		string	false	"Organization id filter"	example(clean-water)
//	@Param			type	query		string	false	"Transaction kind filter"	Enums(donation, disbursement, impact)
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown transaction kind"
//	@Router			/api/ledger/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	switch domain.TransactionKind(kind) {
	case "", domain.KindDonation, domain.KindDisbursement, domain.KindImpact:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown transaction kind")
		return
	}

	transactions := h.ledgerService.ListTransactions(ledgerstore.Filter{
		OrganizationID: r.URL.Query().Get("org"),
		Kind:           domain.TransactionKind(kind),
	})

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:               tx.ID,
			Kind:             string(tx.Kind),
			OrganizationID:   tx.OrganizationID,
			OrganizationName: tx.OrganizationName,
			Amount:           tx.Amount,
			Description:      tx.Description,
			DonorName:        tx.DonorName,
			Timestamp:        tx.Timestamp,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
