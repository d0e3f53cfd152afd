// Package scheduler refreshes the in-memory snapshots from the remote
// base on a cron schedule, so edits made outside the dashboard (directly
// in Airtable) eventually show up without a restart.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/karakusgokhan/team-hub/pkg/logger"
)

// Loader is any service that can reload its snapshot from the remote base.
type Loader interface {
	Load(ctx context.Context) error
}

type Scheduler struct {
	cron    *cron.Cron
	sources map[string]Loader
	logger  *logger.Logger
	timeout time.Duration
}

func NewScheduler(sources map[string]Loader, log *logger.Logger, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sources: sources,
		logger:  log,
		timeout: timeout,
	}
}

// Start registers the refresh job under spec (cron or @every syntax) and
// starts the cron runner.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Snapshot refresh scheduled", zap.String("spec", spec))
	return nil
}

// Stop halts the cron runner and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refresh() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	failed := 0
	for name, src := range s.sources {
		if err := src.Load(ctx); err != nil {
			failed++
			s.logger.Warn("Snapshot refresh failed",
				zap.String("source", name),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Snapshot refresh completed",
		zap.Int("sources", len(s.sources)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(start)),
	)
}
