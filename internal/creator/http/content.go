package http

import (
	"net/http"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
)

type ContentHandler struct {
	ContentStudio *service.ContentStudio
}

// HandleGenerate renders content from the studio templates.
//
//	@Summary		Generate content
//	@Description	Renders a caption, tweet, YouTube script or blog snippet for the topic and tone. The request is held open for the configured generation delay.
//	@Description	Unknown content types produce placeholder text.
//	@Tags			Content
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creatorsdk.GenerateContentRequest	true	"Generation parameters"
//	@Success		200		{object}	creatorsdk.GeneratedContent			"Generated content"
//	@Failure		400		{object}	creatorsdk.ErrorResponse			"Content type or topic missing"
//	@Failure		401		{object}	creatorsdk.ErrorResponse			"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/content/generate [post].
func (h *ContentHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req creatorsdk.GenerateContentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	state, err := h.ContentStudio.Generate(ctx, httpx.SessionIDFromContext(ctx), domain.GenerateRequest{
		ContentType: req.ContentType,
		Topic:       req.Topic,
		Tone:        req.Tone,
		Length:      req.Length,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to generate content")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGenerated(state))
}

// HandleLatest returns the last generated content.
//
//	@Summary		Latest generated content
//	@Tags			Content
//	@Produce		json
//	@Success		200	{object}	creatorsdk.GeneratedContent	"Generated content"
//	@Failure		401	{object}	creatorsdk.ErrorResponse	"Missing, invalid or expired session"
//	@Failure		409	{object}	creatorsdk.ErrorResponse	"Nothing generated yet"
//	@Security		BearerAuth
//	@Router			/v1/content/latest [get].
func (h *ContentHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	state, err := h.ContentStudio.Latest(r.Context(), httpx.SessionIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load generated content")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGenerated(state))
}
