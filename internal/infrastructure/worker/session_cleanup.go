// Package worker runs background maintenance jobs.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/api/metrics"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

const (
	defaultInterval  = time.Hour
	defaultRetention = 30 * 24 * time.Hour
)

// SessionCleanup periodically deletes sessions that expired or were
// revoked more than Retention ago.
type SessionCleanup struct {
	pruner    ports.SessionPruner
	interval  time.Duration
	retention time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewSessionCleanup falls back to hourly runs and a 30 day retention when
// interval or retention is not positive.
func NewSessionCleanup(pruner ports.SessionPruner, interval, retention time.Duration, log zerolog.Logger) *SessionCleanup {
	if interval <= 0 {
		interval = defaultInterval
	}
	if retention <= 0 {
		retention = defaultRetention
	}
	return &SessionCleanup{
		pruner:    pruner,
		interval:  interval,
		retention: retention,
		log:       log,
		now:       time.Now,
	}
}

// Start runs the job in a goroutine until ctx is cancelled. The returned
// channel is closed once the loop has exited.
func (w *SessionCleanup) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.run(ctx)
	}()
	return done
}

func (w *SessionCleanup) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single pass and returns the number of deleted rows.
func (w *SessionCleanup) RunOnce(ctx context.Context) int64 {
	start := time.Now()
	cutoff := w.now().UTC().Add(-w.retention)
	n, err := w.pruner.DeleteStale(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Time("cutoff", cutoff).Msg("session cleanup failed")
		}
		return 0
	}
	metrics.SessionsPrunedTotal.Add(float64(n))
	if n > 0 {
		w.log.Info().Int64("deleted", n).Time("cutoff", cutoff).Dur("took", time.Since(start)).Msg("stale sessions deleted")
	}
	return n
}
