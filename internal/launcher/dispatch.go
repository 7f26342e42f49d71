package launcher

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/launchflags"
	"github.com/skyboundapp/skybound-launcher/internal/settings"
)

// ResolveInitialFlow selects and starts exactly one flow from the startup
// flags. Administrative and maintenance flows deliberately preempt normal
// launching, so the priority order here is policy, not convenience:
// uninstall, then settings, then the watchers, then the background updater,
// then an explicit launch mode, then (unless quiet) the menu, else exit.
// Only the first matching flag fires; the rest are ignored even when set.
//
// The returned channel closes once the chosen flow and any work it
// supervised have finished; the dispatch goroutine itself never blocks on
// supervised work.
func (a *App) ResolveInitialFlow(ctx context.Context) <-chan struct{} {
	if !a.Installer.CheckInstallLocation() {
		return a.resolveFirstRun(ctx)
	}

	intent := a.initialIntent()
	log.Info().Stringer("intent", intent).Msg("resolved startup intent")

	switch intent {
	case IntentUninstall:
		return a.runUninstall()
	case IntentLaunchSettings:
		return a.runSettings()
	case IntentWatcher:
		return a.runWatcher(a.Watcher, "watcher")
	case IntentMultiWatcher:
		return a.runWatcher(a.MultiWatcher, "multi-instance watcher")
	case IntentBackgroundUpdater:
		return a.runBackgroundUpdater(ctx)
	case IntentLaunchTarget:
		return a.runLaunch(ctx, ModePrimary)
	case IntentLaunchTargetAlt:
		return a.runLaunch(ctx, ModeSecondary)
	case IntentMenu:
		return a.runMenu(ctx)
	default:
		a.Terminate(exitcode.Success)
		return closedChan
	}
}

// initialIntent maps the flag snapshot to the single intent acted upon.
func (a *App) initialIntent() Intent {
	f := a.Flags
	switch {
	case f.Uninstall:
		return IntentUninstall
	case f.Settings:
		return IntentLaunchSettings
	case f.Watcher:
		return IntentWatcher
	case f.MultiWatcher:
		return IntentMultiWatcher
	case f.BackgroundUpdater:
		return IntentBackgroundUpdater
	case f.Mode != "":
		return modeIntent(f.Mode)
	case !f.Quiet:
		return IntentMenu
	default:
		return IntentExit
	}
}

func modeIntent(mode string) Intent {
	if mode == launchflags.ModeStudio {
		return IntentLaunchTargetAlt
	}
	return IntentLaunchTarget
}

// resolveFirstRun handles a process started before the app is installed.
// Asking to uninstall something that is not there is an invalid operation,
// quiet or not (quiet only suppresses the notice). A quiet first run has
// nothing it can do unattended either. Everything else goes through the
// install wizard.
func (a *App) resolveFirstRun(ctx context.Context) <-chan struct{} {
	if a.Flags.Uninstall {
		a.notice(settings.AppName + " is not installed.")
		a.Terminate(exitcode.InvalidOperation)
		return closedChan
	}
	if a.Flags.Quiet {
		log.Error().Msg("first run cannot proceed quietly")
		a.Terminate(exitcode.InvalidOperation)
		return closedChan
	}
	return a.runInstall(ctx)
}

// ResolveNextFlow routes the action a dialog closed with into its follow-up
// flow. Anything that is not a recognized launch action terminates the
// process: as a user cancellation when the install wizard was abandoned,
// normally otherwise.
func (a *App) ResolveNextFlow(ctx context.Context, action Intent, isUnfinishedInstall bool) <-chan struct{} {
	log.Info().Stringer("action", action).Msg("resolved next flow")

	switch action {
	case IntentLaunchSettings:
		return a.runSettings()
	case IntentLaunchTarget:
		return a.runLaunch(ctx, ModePrimary)
	case IntentLaunchTargetAlt:
		return a.runLaunch(ctx, ModeSecondary)
	default:
		if isUnfinishedInstall {
			a.Terminate(exitcode.UserExit)
		} else {
			a.Terminate(exitcode.Success)
		}
		return closedChan
	}
}
