package creatorsdk

import (
	"context"
	"net/http"
)

// GenerateContent renders a template. The call blocks for the server's
// generation delay.
func (s *Session) GenerateContent(ctx context.Context, req GenerateContentRequest) (*GeneratedContent, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/content/generate", req)
	if err != nil {
		return nil, err
	}

	var out GeneratedContent
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestContent returns the last generated content.
func (s *Session) LatestContent(ctx context.Context) (*GeneratedContent, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/content/latest", nil)
	if err != nil {
		return nil, err
	}

	var out GeneratedContent
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDrafts returns saved drafts newest first.
func (s *Session) ListDrafts(ctx context.Context) (*DraftsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/drafts", nil)
	if err != nil {
		return nil, err
	}

	var out DraftsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveDraft stores an explicit draft and returns the updated collection.
func (s *Session) SaveDraft(ctx context.Context, req SaveDraftRequest) (*DraftsResponse, error) {
	return s.saveDraft(ctx, "/v1/drafts", req)
}

// SaveGeneratedDraft stores the last generated content as a draft.
func (s *Session) SaveGeneratedDraft(ctx context.Context) (*DraftsResponse, error) {
	return s.saveDraft(ctx, "/v1/drafts/generated", nil)
}

func (s *Session) saveDraft(ctx context.Context, path string, body any) (*DraftsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var out DraftsResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
