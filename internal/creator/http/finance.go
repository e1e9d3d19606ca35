package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
)

type FinanceHandler struct {
	FinanceService *service.FinanceService
}

// HandleList returns the ledger newest first.
//
//	@Summary		List ledger entries
//	@Tags			Finance
//	@Produce		json
//	@Success		200	{object}	creatorsdk.FinanceEntriesResponse	"Entries and totals"
//	@Failure		401	{object}	creatorsdk.ErrorResponse			"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/finance/entries [get].
func (h *FinanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.FinanceService.List(r.Context(), httpx.SessionIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list entries")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEntriesResponse(entries))
}

// HandleAdd records a new income or expense.
//
//	@Summary		Add a ledger entry
//	@Description	Amount is a decimal string and must not be negative. Date uses YYYY-MM-DD.
//	@Tags			Finance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creatorsdk.AddFinanceEntryRequest	true	"Entry"
//	@Success		201		{object}	creatorsdk.FinanceEntriesResponse	"Updated entries and totals"
//	@Failure		400		{object}	creatorsdk.ErrorResponse			"Invalid entry"
//	@Failure		401		{object}	creatorsdk.ErrorResponse			"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/finance/entries [post].
func (h *FinanceHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req creatorsdk.AddFinanceEntryRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	entries, err := h.FinanceService.AddEntry(ctx, httpx.SessionIDFromContext(ctx), domain.FinanceEntryInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Source:      req.Source,
		Date:        req.Date,
		Tag:         req.Tag,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to add entry")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEntriesResponse(entries))
}

// HandleSummary returns the totals with display formatting.
//
//	@Summary		Ledger summary
//	@Description	Total income, total expenses and net profit, both as plain decimals and formatted for display.
//	@Tags			Finance
//	@Produce		json
//	@Success		200	{object}	creatorsdk.FinanceSummaryResponse	"Summary"
//	@Failure		401	{object}	creatorsdk.ErrorResponse			"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/finance/summary [get].
func (h *FinanceHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.FinanceService.Summary(r.Context(), httpx.SessionIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Failed to summarize ledger")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSummaryResponse(summary))
}

