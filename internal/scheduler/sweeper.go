// Package scheduler runs the periodic job that evicts idle sessions.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/revampedplant756/weather-glasses-app/internal/session"
)

// Sweeper periodically removes sessions that have been idle longer than ttl.
type Sweeper struct {
	scheduler *gocron.Scheduler
	registry  *session.Registry
	ttl       time.Duration
	interval  time.Duration
	log       *zap.SugaredLogger
}

// New creates a new Sweeper.
func New(registry *session.Registry, ttl, interval time.Duration, log *zap.SugaredLogger) *Sweeper {
	s := gocron.NewScheduler(time.UTC)
	return &Sweeper{
		scheduler: s,
		registry:  registry,
		ttl:       ttl,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.Every(s.interval).Do(func() {
		removed := s.registry.SweepIdle(s.ttl)
		if removed > 0 {
			s.log.Infow("evicted idle sessions", "count", removed, "active", s.registry.Len())
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Sweeper) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
