package creatorsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a creatordesk API client for unauthenticated calls. It opens
// Sessions for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL. Content generation
// waits server-side, so the timeout leaves room for it.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateSession opens a freshly seeded workspace.
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/sessions", "", nil)
	if err != nil {
		return nil, err
	}

	var sessResp SessionResponse
	if err := decodeJSON(resp, &sessResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		id:        sessResp.SessionID,
		token:     sessResp.Token,
		expiresAt: time.Now().Add(time.Duration(sessResp.ExpiresIn) * time.Second),
	}, nil
}

// NewSessionFromToken resumes a workspace from a previously issued token.
func (c *Client) NewSessionFromToken(sessionID, token string) *Session {
	return &Session{client: c, id: sessionID, token: token}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// Session is an authenticated workspace handle.
type Session struct {
	client    *Client
	id        string
	token     string
	expiresAt time.Time
}

// ID returns the workspace session id.
func (s *Session) ID() string { return s.id }

// Token returns the bearer token, for storing and resuming later.
func (s *Session) Token() string { return s.token }

// ExpiresAt is when the token stops being accepted. Zero for resumed sessions.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
