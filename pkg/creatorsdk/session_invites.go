package creatorsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListInvites returns the workspace's brand invites and pending count.
func (s *Session) ListInvites(ctx context.Context) (*ListInvitesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/invites", nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvite returns one invite with its allowed next statuses.
func (s *Session) GetInvite(ctx context.Context, id string) (*Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/invites/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out Invite
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInviteStatus moves an invite to status and returns the whole updated
// collection.
func (s *Session) UpdateInviteStatus(ctx context.Context, id, status string) (*ListInvitesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/invites/"+url.PathEscape(id)+"/status",
		UpdateInviteStatusRequest{Status: status},
	)
	if err != nil {
		return nil, err
	}

	var out ListInvitesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
