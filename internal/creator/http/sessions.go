package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
)

type SessionsHandler struct {
	SessionService *service.SessionService
}

// HandleCreate opens a new seeded workspace.
//
//	@Summary		Create a workspace session
//	@Description	Creates a workspace seeded with the default brand invites and ledger entries and returns a bearer token scoped to it.
//	@Description	Workspaces are evicted after a period of inactivity.
//	@Tags			Sessions
//	@Produce		json
//	@Success		201	{object}	creatorsdk.SessionResponse	"Session created"
//	@Failure		429	{object}	creatorsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500	{object}	creatorsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	issued, err := h.SessionService.Create(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to create session")
		return
	}

	expiresIn := int(time.Until(issued.ExpiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	httpx.WriteJSON(w, http.StatusCreated, creatorsdk.SessionResponse{
		SessionID: issued.Session.ID,
		Token:     issued.Token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	})
}
