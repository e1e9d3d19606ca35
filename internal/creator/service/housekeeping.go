package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

// DefaultSessionIdleTTL is how long an untouched workspace survives.
const DefaultSessionIdleTTL = 2 * time.Hour

// HousekeepingService periodically evicts idle workspaces so abandoned
// sessions do not grow the store without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	IdleTTL  time.Duration
	Now      func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval and idle TTL. Zero or negative values fall back to 10 minutes and
// DefaultSessionIdleTTL.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval, idleTTL time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		IdleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "idle_ttl", s.IdleTTL)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes every session idle for longer than IdleTTL and returns
// how many were removed.
func (s *HousekeepingService) cleanup() int64 {
	ctx := context.Background()
	cutoff := clock(s.Now).Add(-s.IdleTTL)

	n, err := s.Store.Sessions().DeleteIdleSessions(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to evict idle sessions", "error", err)
		return 0
	}

	if n > 0 {
		s.Logger.Info("evicted idle sessions", "count", n, "cutoff", cutoff)
	} else {
		s.Logger.Debug("no idle sessions to evict")
	}
	return n
}
