package creatorsdk

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// SessionResponse is returned when a workspace is created.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

type Invite struct {
	ID           string   `json:"id"`
	BrandName    string   `json:"brand_name"`
	Description  string   `json:"description"`
	Offer        string   `json:"offer"`
	Deadline     string   `json:"deadline"`
	Requirements []string `json:"requirements"`
	Platform     string   `json:"platform"`
	Status       string   `json:"status"`

	// NextStatuses lists the statuses this invite may move to.
	NextStatuses []string `json:"next_statuses"`
}

type ListInvitesResponse struct {
	Invites      []Invite `json:"invites"`
	PendingCount int      `json:"pending_count"`
}

type UpdateInviteStatusRequest struct {
	Status string `json:"status"`
}

type FinanceEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Tag         string `json:"tag"`
	Description string `json:"description,omitempty"`
}

// AddFinanceEntryRequest mirrors the entry form; Amount is the text the user
// typed.
type AddFinanceEntryRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Tag         string `json:"tag"`
	Description string `json:"description,omitempty"`
}

type Totals struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetProfit     string `json:"net_profit"`
}

type FinanceEntriesResponse struct {
	Entries []FinanceEntry `json:"entries"`
	Totals  Totals         `json:"totals"`
}

type FinanceSummaryResponse struct {
	Totals     Totals   `json:"totals"`
	Formatted  Totals   `json:"formatted"`
	EntryCount int      `json:"entry_count"`
	Tags       []string `json:"tags"`
}

type GenerateContentRequest struct {
	ContentType string `json:"content_type"`
	Topic       string `json:"topic"`
	Tone        string `json:"tone,omitempty"`
	Length      string `json:"length,omitempty"`
}

type GeneratedContent struct {
	ContentType string `json:"content_type"`
	Topic       string `json:"topic"`
	Tone        string `json:"tone"`
	Length      string `json:"length"`
	Content     string `json:"content"`
}

type ContentDraft struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type SaveDraftRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

type DraftsResponse struct {
	Drafts []ContentDraft `json:"drafts"`
}
