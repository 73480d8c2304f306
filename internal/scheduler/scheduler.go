// Package scheduler drives the periodic refresh simulation with cron.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/store"
)

// Refresher is the slice of the domain store the scheduler drives.
type Refresher interface {
	MaybeRefresh() store.RefreshResult
}

// Scheduler ticks the refresh simulation on a fixed interval. The store
// itself decides whether enough time has elapsed for a pass to run.
type Scheduler struct {
	cron     *cron.Cron
	store    Refresher
	interval time.Duration
}

// New creates a scheduler ticking at the given interval.
func New(st Refresher, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		cron:     cron.New(),
		store:    st,
		interval: interval,
	}
}

// Start runs an immediate catch-up check, then schedules the recurring tick.
func (s *Scheduler) Start() error {
	s.tick()

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("failed to schedule refresh tick: %w", err)
	}

	s.cron.Start()
	logging.Info("refresh scheduler started", "interval", s.interval.String())
	return nil
}

// Stop stops the scheduler, waiting for a running tick to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	logging.Info("refresh scheduler stopped")
}

// NextRun returns the next scheduled tick time.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}

	next := entries[0].Next
	for _, e := range entries[1:] {
		if e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}

func (s *Scheduler) tick() {
	res := s.store.MaybeRefresh()
	if res.Ran {
		logging.Info("refresh tick ran",
			"airdrops_completed", res.AirdropsCompleted,
			"testnets_advanced", res.TestnetsAdvanced)
	}
}
