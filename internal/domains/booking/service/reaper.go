package service

import (
	"context"
	"nutricoach/config"
	"time"

	"github.com/rs/zerolog/log"
)

// Reaper periodically cancels coaching calls that never completed payment so
// their held slots return to the availability pool.
type Reaper struct {
	svc Booking
	cfg *config.Config
}

func NewReaper(svc Booking, cfg *config.Config) *Reaper {
	return &Reaper{svc: svc, cfg: cfg}
}

// Run blocks until ctx is cancelled. It is a no-op when the reaper is
// disabled by configuration.
func (r *Reaper) Run(ctx context.Context) {
	if !r.cfg.Booking.ReaperEnable {
		log.Info().Msg("booking reaper is disabled")

		return
	}

	interval := time.Duration(r.cfg.Booking.ReaperIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	log.Info().Dur("interval", interval).Msg("booking reaper started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("booking reaper stopped")

			return
		case <-ticker.C:
			if _, err := r.svc.ReleaseStalePendingCalls(ctx); err != nil {
				log.Error().Err(err).Msg("booking reaper run failed")
			}
		}
	}
}
