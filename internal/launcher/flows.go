package launcher

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skyboundapp/skybound-launcher/internal/audio"
	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/killevent"
	"github.com/skyboundapp/skybound-launcher/internal/settings"
	"github.com/skyboundapp/skybound-launcher/internal/singleinstance"
	"github.com/skyboundapp/skybound-launcher/internal/supervise"
)

// runInstall shows the install wizard under the installer lock, performs
// the install if the user finished, and routes the chosen next action.
func (a *App) runInstall(ctx context.Context) <-chan struct{} {
	lock, err := a.AcquireLock(singleinstance.RoleInstaller)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire installer lock")
		a.Terminate(exitcode.InstallFailed)
		return closedChan
	}
	defer lock.Release()

	if !lock.Acquired() {
		a.cue(audio.CueError)
		a.notice("The " + settings.AppName + " installer is already running.")
		a.Terminate(exitcode.AlreadyRunning)
		return closedChan
	}

	a.cue(audio.CueInstall)
	result := a.Dialogs.Install()

	if result.Completed {
		if err := a.Installer.DoInstall(result.InstallDir); err != nil {
			log.Error().Err(err).Str("dir", result.InstallDir).Msg("install failed")
			a.cue(audio.CueError)
			a.notice(settings.AppName + " could not be installed.")
			a.Terminate(exitcode.InstallFailed)
			return closedChan
		}
		a.cue(audio.CueSuccess)
	}

	return a.ResolveNextFlow(ctx, result.NextAction, !result.Completed)
}

// runUninstall confirms, uninstalls, notifies, and exits.
func (a *App) runUninstall() <-chan struct{} {
	lock, err := a.AcquireLock(singleinstance.RoleUninstaller)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire uninstaller lock")
		a.Terminate(exitcode.InstallFailed)
		return closedChan
	}
	defer lock.Release()

	if !lock.Acquired() {
		a.cue(audio.CueError)
		a.notice("The " + settings.AppName + " uninstaller is already running.")
		a.Terminate(exitcode.AlreadyRunning)
		return closedChan
	}

	result := a.Dialogs.ConfirmUninstall()
	if !result.Confirmed {
		a.Terminate(exitcode.Success)
		return closedChan
	}

	if err := a.Installer.DoUninstall(result.KeepData); err != nil {
		log.Error().Err(err).Msg("uninstall failed")
		a.cue(audio.CueError)
		a.notice(settings.AppName + " could not be fully uninstalled.")
		a.Terminate(exitcode.InstallFailed)
		return closedChan
	}

	a.cue(audio.CueSuccess)
	a.notice(settings.AppName + " has been uninstalled.")
	a.Terminate(exitcode.Success)
	return closedChan
}

// runSettings shows the settings window, or brings the one another process
// already has open to the front.
func (a *App) runSettings() <-chan struct{} {
	lock, err := a.AcquireLock(singleinstance.RoleSettings)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire settings lock")
		a.Terminate(exitcode.InvalidOperation)
		return closedChan
	}
	defer lock.Release()

	if !lock.Acquired() {
		a.SettingsUI.FocusExisting()
		a.Terminate(exitcode.Success)
		return closedChan
	}

	a.SettingsUI.Show()
	a.Terminate(exitcode.Success)
	return closedChan
}

// runMenu shows the launcher menu and routes whatever the user picked.
func (a *App) runMenu(ctx context.Context) <-chan struct{} {
	action := a.Dialogs.Menu()
	return a.ResolveNextFlow(ctx, action, false)
}

// runLaunch starts the target program under supervision. A ModeNone here is
// a programming error and fails before any dialog or process is touched.
func (a *App) runLaunch(ctx context.Context, mode LaunchMode) <-chan struct{} {
	if mode == ModeNone {
		log.Error().Msg("launch invoked without a launch mode")
		a.Terminate(exitcode.InvalidOperation)
		return closedChan
	}

	if !a.HasMediaSupport() {
		if !a.Flags.Quiet {
			a.cue(audio.CueError)
			a.Dialogs.Notice(settings.AppName + " requires system media components that are missing.")
			if a.OpenURL != nil && a.Settings.General.HelpURL != "" {
				if err := a.OpenURL(a.Settings.General.HelpURL); err != nil {
					log.Warn().Err(err).Msg("failed to open help link")
				}
			}
		}
		a.Terminate(exitcode.FileNotFound)
		return closedChan
	}

	target := a.targetBinary(mode)

	// The target's own singleton marker can linger briefly after it has
	// actually exited, so a positive hit is resolved by asking the user,
	// never treated as fatal.
	if a.confirmLaunches() && !a.multiInstance() {
		running, err := a.ScanTarget(ctx, target)
		if err != nil {
			log.Warn().Err(err).Str("target", target).Msg("instance scan failed")
		} else if running && !a.Dialogs.ConfirmLaunch(target) {
			a.Terminate(exitcode.Success)
			return closedChan
		}
	}

	opts := BootstrapOptions{NoLaunch: a.Flags.NoLaunch}
	if !a.Flags.Quiet {
		opts.Progress = a.Dialogs.Progress("Launching " + settings.AppName + "...")
	}

	bs, err := a.NewBootstrapper(mode, opts)
	if err != nil {
		log.Error().Err(err).Stringer("mode", mode).Msg("failed to construct bootstrapper")
		a.cue(audio.CueError)
		a.notice(settings.AppName + " could not be started.")
		a.Terminate(exitcode.LaunchFailed)
		return closedChan
	}

	code := exitcode.Success
	return a.Supervise(supervise.Task{
		Label: "bootstrapper",
		Work:  bs.Run,
		OnFault: func(err error) {
			code = exitcode.LaunchFailed
			a.cue(audio.CueError)
			a.notice(settings.AppName + " could not be started.")
		},
		OnFinally: func() {
			a.Terminate(code)
		},
	})
}

// runWatcher runs a watcher collaborator to completion under supervision.
// Watcher faults are reported through the supervisor; either way the
// process exits normally once the watcher's subject is gone.
func (a *App) runWatcher(watcher Runner, label string) <-chan struct{} {
	ctx, cancel := context.WithCancel(context.Background())
	return a.Supervise(supervise.Task{
		Label: label,
		Work: func() error {
			return watcher.Run(ctx)
		},
		OnFinally: func() {
			cancel()
			a.Terminate(exitcode.Success)
		},
	})
}

// runBackgroundUpdater performs an unattended update. Quiet and no-launch
// are forced on so the flow can never become interactive or start the
// target. Any other process can stop the update by raising the named kill
// event; when the update finishes on its own first, the event watcher is
// torn down instead of being left blocking forever.
func (a *App) runBackgroundUpdater(ctx context.Context) <-chan struct{} {
	a.Flags.Quiet = true
	a.Flags.NoLaunch = true

	bs, err := a.NewBootstrapper(ModePrimary, BootstrapOptions{NoLaunch: true})
	if err != nil {
		log.Error().Err(err).Msg("failed to construct background updater")
		a.Terminate(exitcode.InstallFailed)
		return closedChan
	}

	watchCtx, stopWatching := context.WithCancel(ctx)
	go func() {
		if err := a.WatchKillEvent(watchCtx, killevent.BackgroundUpdater, bs.Cancel); err != nil {
			log.Warn().Err(err).Msg("kill event watcher failed")
		}
	}()

	code := exitcode.Success
	return a.Supervise(supervise.Task{
		Label: "background updater",
		Work:  bs.Run,
		OnFault: func(err error) {
			code = exitcode.InstallFailed
		},
		OnFinally: func() {
			stopWatching()
			a.Terminate(code)
		},
	})
}
