// Package scheduler drives the hourly broadcast cycle.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"MarketPulse/internal/collector"
	"MarketPulse/internal/model"
	"MarketPulse/internal/notifier"
	"MarketPulse/internal/report"
)

// SentimentFetcher fetches the fear & greed index. Declared here so the
// scheduler can run with a stub in tests.
type SentimentFetcher interface {
	Fetch(ctx context.Context) (*model.SentimentIndex, error)
}

// Scheduler runs the broadcast cycle on a cron expression.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Sentiment SentimentFetcher
	Composer  *report.Composer
	Notifiers []notifier.Notifier
	Ctx       context.Context

	// CycleTimeout caps one full collect-compose-deliver pass.
	CycleTimeout time.Duration

	now func() time.Time
}

// NewScheduler creates a Scheduler around a prepared pipeline.
func NewScheduler(ctx context.Context, col *collector.Collector, sf SentimentFetcher, comp *report.Composer, notifiers []notifier.Notifier) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Collector:    col,
		Sentiment:    sf,
		Composer:     comp,
		Notifiers:    notifiers,
		Ctx:          ctx,
		CycleTimeout: 5 * time.Minute,
		now:          time.Now,
	}
}

// Register schedules the broadcast cycle. The default expression fires
// at the top of every hour.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.safeCycle); err != nil {
		return fmt.Errorf("register broadcast cycle: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running cycle.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes one broadcast cycle immediately.
func (s *Scheduler) RunNow() {
	s.safeCycle()
}

// safeCycle guards the cron goroutine; a panic in one cycle must not
// kill the schedule.
func (s *Scheduler) safeCycle() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("broadcast cycle panicked")
		}
	}()
	s.runCycle()
}

func (s *Scheduler) runCycle() {
	started := s.now()
	ctx, cancel := context.WithTimeout(s.Ctx, s.CycleTimeout)
	defer cancel()

	log.Info().Time("cycle", started).Msg("broadcast cycle started")

	data := s.Collector.CollectAll(ctx)
	if len(data.Spot) == 0 {
		log.Error().Msg("no market data collected, skipping broadcast")
		return
	}

	var fgi *model.SentimentIndex
	if report.IsEnhancedHour(started.In(report.CN)) {
		idx, err := s.Sentiment.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("fetch sentiment index failed")
		} else {
			fgi = idx
		}
	}

	text := report.Text(s.Composer.Compose(started, data, fgi))
	s.deliver(ctx, text)

	log.Info().
		Dur("elapsed", s.now().Sub(started)).
		Int("symbols", len(data.Spot)).
		Msg("broadcast cycle finished")
}

// deliver fans the broadcast out to every channel. Failures are logged
// and the cycle moves on; the next hour gets a fresh attempt.
func (s *Scheduler) deliver(ctx context.Context, text string) {
	for _, n := range s.Notifiers {
		if err := n.Send(ctx, text); err != nil {
			log.Error().Err(err).Str("channel", n.Name()).Msg("deliver broadcast failed")
			continue
		}
		log.Info().Str("channel", n.Name()).Msg("broadcast delivered")
	}
}
