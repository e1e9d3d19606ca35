package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleList returns every invite of the workspace.
//
//	@Summary		List brand invites
//	@Description	Returns the workspace's brand invites in their original order with the number still pending.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	creatorsdk.ListInvitesResponse	"Invites"
//	@Failure		401	{object}	creatorsdk.ErrorResponse		"Missing, invalid or expired session"
//	@Failure		500	{object}	creatorsdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invites, err := h.InviteService.List(r.Context(), httpx.SessionIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list invites")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitesResponse(invites))
}

// HandleGet returns a single invite.
//
//	@Summary		Get a brand invite
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string					true	"Invite ID"
//	@Success		200	{object}	creatorsdk.Invite		"Invite"
//	@Failure		401	{object}	creatorsdk.ErrorResponse	"Missing, invalid or expired session"
//	@Failure		404	{object}	creatorsdk.ErrorResponse	"Invite not found"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id} [get].
func (h *InvitesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inv, err := h.InviteService.Get(ctx, httpx.SessionIDFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to get invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvite(inv))
}

// HandleUpdateStatus moves an invite along its lifecycle.
//
//	@Summary		Update an invite's status
//	@Description	A pending invite can be accepted or declined, an accepted one started (ongoing) and an ongoing one completed. Every other move is rejected.
//	@Description	The response carries the full updated invite list.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Invite ID"
//	@Param			request	body		creatorsdk.UpdateInviteStatusRequest	true	"New status"
//	@Success		200		{object}	creatorsdk.ListInvitesResponse			"Updated invites"
//	@Failure		400		{object}	creatorsdk.ErrorResponse				"Unknown status or malformed body"
//	@Failure		401		{object}	creatorsdk.ErrorResponse				"Missing, invalid or expired session"
//	@Failure		404		{object}	creatorsdk.ErrorResponse				"Invite not found"
//	@Failure		409		{object}	creatorsdk.ErrorResponse				"Transition not allowed from the current status"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id}/status [post].
func (h *InvitesHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req creatorsdk.UpdateInviteStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	invites, err := h.InviteService.UpdateStatus(ctx,
		httpx.SessionIDFromContext(ctx),
		r.PathValue("id"),
		domain.InviteStatus(req.Status),
	)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitesResponse(invites))
}
