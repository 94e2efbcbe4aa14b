package currency

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the exchange rate on a fixed interval so request
// paths serve cached rates.
type Scheduler struct {
	cron      *cron.Cron
	converter *Converter
	log       *slog.Logger
}

// NewScheduler creates a Scheduler that refreshes conv every interval.
func NewScheduler(conv *Converter, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:      c,
		converter: conv,
		log:       log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runRefresh); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins the periodic refresh and primes the rate once immediately.
func (s *Scheduler) Start() {
	s.log.Info("currency refresh scheduler started")
	go s.runRefresh()
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running refresh to
// finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("currency refresh scheduler stopping")
	return s.cron.Stop()
}

func (s *Scheduler) runRefresh() {
	s.converter.Refresh(context.Background())
}
