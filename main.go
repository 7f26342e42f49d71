package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/skyboundapp/skybound-launcher/internal/audio"
	"github.com/skyboundapp/skybound-launcher/internal/bootstrap"
	"github.com/skyboundapp/skybound-launcher/internal/browser"
	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/install"
	"github.com/skyboundapp/skybound-launcher/internal/launcher"
	"github.com/skyboundapp/skybound-launcher/internal/launchflags"
	"github.com/skyboundapp/skybound-launcher/internal/media"
	"github.com/skyboundapp/skybound-launcher/internal/prompt"
	"github.com/skyboundapp/skybound-launcher/internal/settings"
	"github.com/skyboundapp/skybound-launcher/internal/telemetry"
	"github.com/skyboundapp/skybound-launcher/internal/watch"
)

func main() {
	flags, err := launchflags.Parse("skybound-launcher", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(exitcode.InvalidOperation))
	}

	cfg, err := settings.LoadOrCreate("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load settings:", err)
		os.Exit(int(exitcode.InvalidOperation))
	}

	if err := telemetry.Init(cfg.Telemetry.ErrorReporting, settings.AppVersion); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to start error reporting:", err)
	}
	setupLogging(cfg, flags)
	audio.Init(flags.Quiet)

	log.Info().Str("version", settings.AppVersion).Msg("launcher started")

	funnel := exitcode.NewFunnel(telemetry.Close)
	manager := install.NewManager(cfg.General.AppDir)
	dialogs := prompt.NewConsole(cfg.General.AppDir, audio.Play)

	app := launcher.New(&launcher.App{
		Flags:      flags,
		Settings:   cfg,
		Dialogs:    dialogs,
		SettingsUI: prompt.NewSettingsConsole(cfg),
		Installer:  manager,
		Watcher: &watch.TargetWatcher{
			Target: cfg.Targets.ClientBinary,
		},
		MultiWatcher: &watch.TargetWatcher{
			Target: cfg.Targets.ClientBinary,
		},
		NewBootstrapper: func(mode launcher.LaunchMode, opts launcher.BootstrapOptions) (launcher.Bootstrapper, error) {
			target := cfg.Targets.ClientBinary
			if mode == launcher.ModeSecondary {
				target = cfg.Targets.StudioBinary
			}
			return bootstrap.New(bootstrap.Config{
				TargetPath:  filepath.Join(cfg.General.AppDir, target),
				PayloadURL:  cfg.Targets.PayloadURL,
				DownloadDir: filepath.Join(cfg.General.AppDir, "downloads"),
				NoLaunch:    opts.NoLaunch,
				Progress:    opts.Progress,
			}), nil
		},
		HasMediaSupport: media.Supported,
		OpenURL:         browser.Open,
		Terminate:       funnel.Exit,
	})

	<-app.ResolveInitialFlow(context.Background())

	// Every flow exits through the funnel; this is only reachable if one
	// somehow did not.
	funnel.Exit(exitcode.Success)
}

// setupLogging sends logs to a rotating file in the app dir, to the console
// unless quiet, and to crash reporting when that is enabled.
func setupLogging(cfg *settings.Settings, flags *launchflags.Flags) {
	if cfg.General.DebugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	writers := []io.Writer{&lumberjack.Logger{
		Filename:   cfg.LogPath(),
		MaxSize:    5,
		MaxBackups: 3,
	}}
	if !flags.Quiet {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if w := telemetry.Writer(); w != nil {
		writers = append(writers, w)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}
