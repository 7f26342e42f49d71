// Package bootstrap is the reference implementation of the launch pipeline:
// fetch the target payload if one is configured, then start the target
// program. Cancellation is cooperative; a cancelled run winds down at the
// next safe point and reports clean completion, not a fault.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/rs/zerolog/log"
)

// Config describes one bootstrap run.
type Config struct {
	// TargetPath is the executable to start.
	TargetPath string
	// PayloadURL, when set, is downloaded into DownloadDir before launch.
	PayloadURL  string
	DownloadDir string
	// NoLaunch updates the payload without starting the target.
	NoLaunch bool
	// Progress receives download progress, nil when unattended.
	Progress func(complete, total int64)
}

// Bootstrapper runs the pipeline once.
type Bootstrapper struct {
	cfg        Config
	client     *grab.Client
	ctx        context.Context
	cancel     context.CancelFunc
	cancelOnce sync.Once
}

// New prepares a bootstrapper for a single Run.
func New(cfg Config) *Bootstrapper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bootstrapper{
		cfg:    cfg,
		client: grab.NewClient(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Cancel asks a running pipeline to stop. Idempotent and safe from any
// goroutine; Run returns nil once the pipeline has wound down.
func (b *Bootstrapper) Cancel() {
	b.cancelOnce.Do(func() {
		log.Info().Msg("bootstrap cancelled")
		b.cancel()
	})
}

// Run executes the pipeline. It returns nil on success or cooperative
// cancellation, and the underlying failure otherwise.
func (b *Bootstrapper) Run() error {
	if b.cfg.PayloadURL != "" {
		if err := b.download(); err != nil {
			if b.ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to fetch payload: %w", err)
		}
	}

	if b.ctx.Err() != nil || b.cfg.NoLaunch {
		return nil
	}

	return b.launch()
}

// download fetches the payload, reporting progress while it runs.
func (b *Bootstrapper) download() error {
	dst := filepath.Join(b.cfg.DownloadDir, filepath.Base(b.cfg.PayloadURL))

	req, err := grab.NewRequest(dst, b.cfg.PayloadURL)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.NoResume = true // Always overwrite, never resume
	req = req.WithContext(b.ctx)

	resp := b.client.Do(req)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if b.cfg.Progress != nil {
				b.cfg.Progress(resp.BytesComplete(), resp.Size())
			}
		case <-resp.Done:
			if err := resp.Err(); err != nil {
				return fmt.Errorf("download failed: %w", err)
			}
			if b.cfg.Progress != nil {
				b.cfg.Progress(resp.Size(), resp.Size())
			}
			log.Info().Str("path", dst).Msg("payload downloaded")
			return nil
		}
	}
}

// launch starts the target program detached from the launcher.
func (b *Bootstrapper) launch() error {
	if _, err := os.Stat(b.cfg.TargetPath); err != nil {
		return fmt.Errorf("target not found: %w", err)
	}

	if err := exec.Command(b.cfg.TargetPath).Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", filepath.Base(b.cfg.TargetPath), err)
	}

	log.Info().Str("target", filepath.Base(b.cfg.TargetPath)).Msg("target launched")
	return nil
}
