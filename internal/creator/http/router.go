package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"

	_ "github.com/aussiebroadwan/creatordesk/api/creator" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	SessionService *service.SessionService
	InviteService  *service.InviteService
	FinanceService *service.FinanceService
	DraftService   *service.DraftService
	ContentStudio  *service.ContentStudio
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerInvites()
	r.registerFinance()
	r.registerContent()
	r.registerDrafts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Creator Desk API
//	@version		0.1.0
//	@description	Workspace state behind the creator dashboard: brand invites, the income and expense ledger, template content generation and saved drafts.
//	@description
//	@description				Every workspace is a session. Create one with POST /v1/sessions and send the returned token on every other call.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/creatordesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with session authentication and a per-session rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.SessionMiddleware(r.verifier),
		httpx.RateLimitBySession(limit),
	)
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{SessionService: r.SessionService}

	// POST /v1/sessions - strict rate limit by IP (each call seeds a workspace)
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	r.Mux.Handle("GET /v1/invites", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/invites/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/invites/{id}/status", r.secured(h.HandleUpdateStatus, httpx.ModerateLimit))
}

func (r *Router) registerFinance() {
	h := &FinanceHandler{FinanceService: r.FinanceService}

	r.Mux.Handle("GET /v1/finance/entries", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/finance/entries", r.secured(h.HandleAdd, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/finance/summary", r.secured(h.HandleSummary, httpx.LenientLimit))
}

func (r *Router) registerContent() {
	h := &ContentHandler{ContentStudio: r.ContentStudio}

	// Generation holds the request open for the configured delay.
	r.Mux.Handle("POST /v1/content/generate", r.secured(h.HandleGenerate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/content/latest", r.secured(h.HandleLatest, httpx.LenientLimit))
}

func (r *Router) registerDrafts() {
	h := &DraftsHandler{DraftService: r.DraftService}

	r.Mux.Handle("GET /v1/drafts", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/drafts", r.secured(h.HandleSave, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/drafts/generated", r.secured(h.HandleSaveGenerated, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
