package launcher

import (
	"context"

	"github.com/skyboundapp/skybound-launcher/internal/audio"
	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/killevent"
	"github.com/skyboundapp/skybound-launcher/internal/launchflags"
	"github.com/skyboundapp/skybound-launcher/internal/procscan"
	"github.com/skyboundapp/skybound-launcher/internal/settings"
	"github.com/skyboundapp/skybound-launcher/internal/singleinstance"
	"github.com/skyboundapp/skybound-launcher/internal/supervise"
)

// App is the context object every flow runs against. It is constructed once
// at startup and passed explicitly; no flow reaches for ambient state.
type App struct {
	Flags    *launchflags.Flags
	Settings *settings.Settings

	Dialogs      Dialogs
	SettingsUI   SettingsUI
	Installer    Installer
	Watcher      Runner
	MultiWatcher Runner

	// NewBootstrapper constructs the target-launch pipeline for a mode.
	NewBootstrapper func(mode LaunchMode, opts BootstrapOptions) (Bootstrapper, error)

	// HasMediaSupport reports whether the system media components the
	// target needs are present.
	HasMediaSupport func() bool

	// OpenURL opens a help link in the user's browser. Optional.
	OpenURL func(url string) error

	// Terminate is the process exit funnel. Every flow's terminal path
	// ends here, directly or through a supervised task's finalizer.
	Terminate func(exitcode.Code)

	// The remaining hooks default to the real implementations in New.
	AcquireLock    func(role string) (*singleinstance.Handle, error)
	ScanTarget     func(ctx context.Context, name string) (bool, error)
	WatchKillEvent func(ctx context.Context, name string, onSignal func()) error
	Supervise      func(t supervise.Task) <-chan struct{}
	PlayCue        func(name string)
}

// New fills in the default wiring for any hook left nil.
func New(app *App) *App {
	if app.AcquireLock == nil {
		app.AcquireLock = singleinstance.Acquire
	}
	if app.ScanTarget == nil {
		app.ScanTarget = procscan.IsRunning
	}
	if app.WatchKillEvent == nil {
		app.WatchKillEvent = killevent.Watch
	}
	if app.Supervise == nil {
		app.Supervise = supervise.Go
	}
	if app.PlayCue == nil {
		app.PlayCue = audio.Play
	}
	return app
}

// confirmLaunches reports whether the "already running" confirmation is
// enabled, by flag or by persisted setting.
func (a *App) confirmLaunches() bool {
	return a.Flags.ConfirmLaunches || a.Settings.General.ConfirmLaunches
}

// multiInstance reports whether concurrent target instances are allowed.
func (a *App) multiInstance() bool {
	return a.Flags.MultiInstance || a.Settings.General.MultiInstance
}

// targetBinary maps a launch mode to the configured executable name.
func (a *App) targetBinary(mode LaunchMode) string {
	if mode == ModeSecondary {
		return a.Settings.Targets.StudioBinary
	}
	return a.Settings.Targets.ClientBinary
}

// notice shows a message dialog unless the process is quiet.
func (a *App) notice(message string) {
	if a.Flags.Quiet {
		return
	}
	a.Dialogs.Notice(message)
}

// cue plays a notification sound unless the process is quiet.
func (a *App) cue(name string) {
	if a.Flags.Quiet {
		return
	}
	a.PlayCue(name)
}

// closedChan is returned by flows that finished on the dispatch goroutine,
// so every dispatcher entry point can hand back something waitable.
var closedChan = func() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
