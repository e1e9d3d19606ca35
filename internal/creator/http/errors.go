package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

// writeServiceError maps a service error onto the API error body. Only
// unexpected failures are logged here; services already log rejections.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	var (
		verr *domain.ValidationError
		terr *domain.InvalidTransitionError
	)

	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest, verr.Error())
	case errors.As(err, &terr):
		httpx.WriteError(w, http.StatusConflict, creatorsdk.ErrorCodeInvalidTransition, terr.Error())
	case errors.Is(err, domain.ErrMissingInput):
		httpx.WriteError(w, http.StatusBadRequest, creatorsdk.ErrorCodeMissingInput, "Please select a content type and provide a topic")
	case errors.Is(err, domain.ErrInviteNotFound):
		httpx.WriteError(w, http.StatusNotFound, creatorsdk.ErrorCodeNotFound, "Invite not found")
	case errors.Is(err, domain.ErrNothingGenerated):
		httpx.WriteError(w, http.StatusConflict, creatorsdk.ErrorCodeNothingGenerated, "Generate content before saving it")
	case errors.Is(err, service.ErrSessionNotFound):
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="session expired"`)
		httpx.WriteError(w, http.StatusUnauthorized, creatorsdk.ErrorCodeInvalidToken, "Session expired or unknown")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is reading the response.
		slogx.FromContext(r.Context()).Info("request cancelled by client")
	default:
		slogx.FromContext(r.Context()).Error(failure, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, creatorsdk.ErrorCodeServerError, failure)
	}
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
}
