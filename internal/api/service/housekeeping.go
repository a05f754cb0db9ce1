package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/offmenu/offmenu/internal/api/store"
)

// HousekeepingService periodically deletes expired single-use tokens so
// login_tokens and invite_tokens don't grow without bound. Used tokens
// are kept; they're the audit trail of who joined through what.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the service. A non-positive interval
// defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut
// it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker, blocking until any in-progress cleanup
// finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
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

// cleanup deletes expired records. Each deletion is independent so a
// failure in one doesn't stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	s.Logger.Debug("starting housekeeping cleanup")

	if err := s.Store.LoginTokens().DeleteExpiredLoginTokens(ctx); err != nil {
		s.Logger.Error("failed to delete expired login tokens", "error", err)
	}

	if err := s.Store.InviteTokens().DeleteExpiredInviteTokens(ctx); err != nil {
		s.Logger.Error("failed to delete expired invite tokens", "error", err)
	}

	s.Logger.Debug("housekeeping cleanup completed")
}
