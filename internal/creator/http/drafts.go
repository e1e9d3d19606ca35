package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
)

type DraftsHandler struct {
	DraftService *service.DraftService
}

// HandleList returns saved drafts newest first.
//
//	@Summary		List drafts
//	@Tags			Drafts
//	@Produce		json
//	@Success		200	{object}	creatorsdk.DraftsResponse	"Drafts"
//	@Failure		401	{object}	creatorsdk.ErrorResponse	"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/drafts [get].
func (h *DraftsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.DraftService.List(r.Context(), httpx.SessionIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list drafts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDraftsResponse(drafts))
}

// HandleSave stores an explicit draft.
//
//	@Summary		Save a draft
//	@Description	Title defaults to "<type> draft" when omitted.
//	@Tags			Drafts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creatorsdk.SaveDraftRequest	true	"Draft"
//	@Success		201		{object}	creatorsdk.DraftsResponse	"Updated drafts"
//	@Failure		400		{object}	creatorsdk.ErrorResponse	"Invalid draft"
//	@Failure		401		{object}	creatorsdk.ErrorResponse	"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/drafts [post].
func (h *DraftsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req creatorsdk.SaveDraftRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	drafts, err := h.DraftService.Save(ctx, httpx.SessionIDFromContext(ctx), domain.ContentDraftInput{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to save draft")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDraftsResponse(drafts))
}

// HandleSaveGenerated saves the last generated content as a draft.
//
//	@Summary		Save generated content as a draft
//	@Description	The draft is titled "<type> about <topic>".
//	@Tags			Drafts
//	@Produce		json
//	@Success		201	{object}	creatorsdk.DraftsResponse	"Updated drafts"
//	@Failure		400	{object}	creatorsdk.ErrorResponse	"Generated content has no draftable type"
//	@Failure		401	{object}	creatorsdk.ErrorResponse	"Missing, invalid or expired session"
//	@Failure		409	{object}	creatorsdk.ErrorResponse	"Nothing generated yet"
//	@Security		BearerAuth
//	@Router			/v1/drafts/generated [post].
func (h *DraftsHandler) HandleSaveGenerated(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.DraftService.SaveGenerated(r.Context(), httpx.SessionIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Failed to save draft")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDraftsResponse(drafts))
}
