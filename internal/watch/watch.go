// Package watch implements the background watcher collaborator: it follows
// the running target program and returns once it is gone, so the owning
// flow can clean up and exit.
package watch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skyboundapp/skybound-launcher/internal/procscan"
)

const (
	defaultInterval = 2 * time.Second
	// startupGrace bounds how long we wait for the target to appear
	// before concluding it never started.
	startupGrace = 30 * time.Second
)

// TargetWatcher polls for the target process until it exits.
type TargetWatcher struct {
	Target   string
	Interval time.Duration
	Grace    time.Duration
}

// Run blocks until the target has exited, the target never appeared within
// the grace period, or ctx is cancelled.
func (w *TargetWatcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	grace := w.Grace
	if grace <= 0 {
		grace = startupGrace
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := false
	deadline := time.Now().Add(grace)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		running, err := procscan.IsRunning(ctx, w.Target)
		if err != nil {
			log.Warn().Err(err).Str("target", w.Target).Msg("process scan failed")
			continue
		}

		if running {
			seen = true
			continue
		}
		if seen {
			log.Info().Str("target", w.Target).Msg("target exited")
			return nil
		}
		if time.Now().After(deadline) {
			log.Info().Str("target", w.Target).Msg("target never appeared")
			return nil
		}
	}
}
