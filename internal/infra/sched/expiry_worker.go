package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain/ports/repository"
	"academic-hub/internal/infra/metrics"
)

// ExpiryWorker periodically observes subscriptions that lapsed since the
// previous sweep. Expiry itself needs no mutation: a user is inactive the
// instant the window passes. The sweep only feeds metrics and the log.
type ExpiryWorker struct {
	interval time.Duration
	users    repository.UserRepository
	log      *zerolog.Logger
}

func NewExpiryWorker(interval time.Duration, users repository.UserRepository, logger *zerolog.Logger) *ExpiryWorker {
	compLog := logger.With().Str("component", "ExpiryWorker").Logger()
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &ExpiryWorker{
		interval: interval,
		users:    users,
		log:      &compLog,
	}
}

func (w *ExpiryWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting expiry worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping expiry worker")
			return ctx.Err()
		case now := <-ticker.C:
			n, err := w.users.CountLapsedBetween(ctx, repository.NoTX, last, now)
			if err != nil {
				w.log.Error().Err(err).Msg("expiry sweep failed")
				continue
			}
			last = now
			if n > 0 {
				metrics.AddSubscriptionsLapsed(n)
				w.log.Info().Int("count", n).Msg("subscriptions lapsed")
			}
		}
	}
}
