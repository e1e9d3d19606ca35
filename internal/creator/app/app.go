package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	httpapi "github.com/aussiebroadwan/creatordesk/internal/creator/http"
	"github.com/aussiebroadwan/creatordesk/internal/creator/seed"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store/drivers/memory"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store/drivers/sqlite"
	"github.com/aussiebroadwan/creatordesk/pkg/cryptox"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the creator desk service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.HS256
	seed   domain.Seed

	// Services
	sessionService      *service.SessionService
	inviteService       *service.InviteService
	financeService      *service.FinanceService
	draftService        *service.DraftService
	contentStudio       *service.ContentStudio
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "creatordesk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	sd, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	app.seed = sd

	if err := app.initSigner(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("creator desk starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"storage", app.cfg.StorageDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down creator desk...")

	// Give outstanding requests, including in-flight generations, a deadline
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("creator desk stopped")
	return nil
}

// initSigner builds the HS256 session signer. Without a configured secret a
// random one is generated, so tokens do not survive a restart.
func (app *Application) initSigner() error {
	var secret []byte
	if app.cfg.SessionSecret != "" {
		secret = cryptox.DecodeSecret(app.cfg.SessionSecret)
	} else {
		raw, err := cryptox.RandomBytes(cryptox.SecretSize256)
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = raw
		app.logger.Warn("CREATOR_SESSION_SECRET not set, using an ephemeral secret")
	}

	signer, err := jwtx.NewHS256(secret, app.cfg.Issuer, app.cfg.Audience)
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	switch strings.ToLower(app.cfg.StorageDriver) {
	case StorageSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	default:
		app.db = memory.NewStore()
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("store ready", "driver", app.cfg.StorageDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:    app.db,
		Signer:   app.signer,
		Issuer:   app.signer.Issuer(),
		Audience: app.signer.Audience(),
		TTL:      app.cfg.SessionTTL,
		Seed:     app.seed,
	}
	app.inviteService = &service.InviteService{Store: app.db}
	app.financeService = &service.FinanceService{
		Store:  app.db,
		Locale: domain.ParseLocale(app.cfg.Locale),
	}
	app.draftService = &service.DraftService{Store: app.db}
	app.contentStudio = &service.ContentStudio{
		Store: app.db,
		Delay: app.cfg.GenerationDelay,
		Sleep: service.SleepContext,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.SessionIdleTTL,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.InviteService = app.inviteService
	router.FinanceService = app.financeService
	router.DraftService = app.draftService
	router.ContentStudio = app.contentStudio
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
