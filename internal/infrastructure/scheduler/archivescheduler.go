// Package scheduler hosts the background loops that run alongside the
// HTTP server.
package scheduler

import (
	"context"
	"sync"
	"time"

	ticketUsecases "mediticket/internal/application/ticket/usecases"
	"mediticket/internal/shared/logger"
)

// ArchiveScheduler periodically force-closes stale submitted tickets.
// The sweep runs once at startup and then on a fixed interval.
type ArchiveScheduler struct {
	archiveUC  ticketUsecases.ArchiveStaleExecutor
	logger     logger.Interface
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	interval   time.Duration
	maxAgeDays int
}

func NewArchiveScheduler(
	archiveUC ticketUsecases.ArchiveStaleExecutor,
	intervalHours int,
	maxAgeDays int,
	logger logger.Interface,
) *ArchiveScheduler {
	return &ArchiveScheduler{
		archiveUC:  archiveUC,
		logger:     logger,
		stopChan:   make(chan struct{}),
		interval:   time.Duration(intervalHours) * time.Hour,
		maxAgeDays: maxAgeDays,
	}
}

// Start launches the sweep loop.
func (s *ArchiveScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting archive scheduler",
		"interval", s.interval,
		"max_age_days", s.maxAgeDays)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully.
func (s *ArchiveScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping archive scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("archive scheduler stopped")
	})
}

func (s *ArchiveScheduler) runLoop(ctx context.Context) {
	// Sweep immediately so a restart never delays archival by a full
	// interval.
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("archive scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ArchiveScheduler) sweep(ctx context.Context) {
	startTime := time.Now()

	result, err := s.archiveUC.Execute(ctx, ticketUsecases.ArchiveStaleCommand{
		MaxAgeDays: s.maxAgeDays,
	})
	if err != nil {
		s.logger.Errorw("archive sweep failed",
			"error", err,
			"duration", time.Since(startTime))
		return
	}

	if result.Closed > 0 {
		s.logger.Infow("archive sweep completed",
			"closed", result.Closed,
			"duration", time.Since(startTime))
	} else {
		s.logger.Debugw("archive sweep found nothing to close",
			"duration", time.Since(startTime))
	}
}
