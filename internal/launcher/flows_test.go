package launcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/launcher"
	"github.com/skyboundapp/skybound-launcher/internal/launchflags"
	"github.com/skyboundapp/skybound-launcher/internal/singleinstance"
)

func TestInstallLockContention(t *testing.T) {
	f := newFixture(t)
	f.installer.Installed = false

	held, err := singleinstance.Acquire("Installer-" + t.Name())
	require.NoError(t, err)
	require.True(t, held.Acquired())
	defer held.Release()

	f.resolveInitial(t)

	assert.Equal(t, []exitcode.Code{exitcode.AlreadyRunning}, f.term.Codes())
	assert.Zero(t, f.dialogs.InstallCalls, "wizard must not open")
	assert.NotEmpty(t, f.dialogs.Notices, "user must be told it is already running")
}

func TestUninstallLockContention(t *testing.T) {
	f := newFixture(t)
	f.flags.Uninstall = true

	held, err := singleinstance.Acquire("Uninstaller-" + t.Name())
	require.NoError(t, err)
	defer held.Release()

	f.resolveInitial(t)

	assert.Equal(t, []exitcode.Code{exitcode.AlreadyRunning}, f.term.Codes())
	assert.Zero(t, f.dialogs.UninstallCalls)
	assert.NotEmpty(t, f.dialogs.Notices)
}

func TestUninstallConfirmed(t *testing.T) {
	f := newFixture(t)
	f.flags.Uninstall = true
	f.dialogs.UninstallResult = launcher.UninstallResult{Confirmed: true, KeepData: true}
	f.resolveInitial(t)

	assert.Equal(t, []bool{true}, f.installer.UninstallKeep)
	assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
	assert.NotEmpty(t, f.dialogs.Notices, "user is notified after uninstall")
}

func TestUninstallDeclined(t *testing.T) {
	f := newFixture(t)
	f.flags.Uninstall = true
	f.resolveInitial(t)

	assert.Empty(t, f.installer.UninstallKeep)
	assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
}

func TestSettingsContentionFocusesExistingWindow(t *testing.T) {
	f := newFixture(t)
	f.flags.Settings = true

	held, err := singleinstance.Acquire("Settings-" + t.Name())
	require.NoError(t, err)
	defer held.Release()

	f.resolveInitial(t)

	assert.Equal(t, 1, f.settingsUI.FocusCalls)
	assert.Zero(t, f.settingsUI.ShowCalls)
	assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
}

func TestLaunchMissingMediaComponents(t *testing.T) {
	t.Run("interactive shows notice and help link", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Mode = launchflags.ModeClient
		f.app.HasMediaSupport = func() bool { return false }
		var opened []string
		f.app.OpenURL = func(url string) error {
			opened = append(opened, url)
			return nil
		}
		f.resolveInitial(t)

		assert.Equal(t, []exitcode.Code{exitcode.FileNotFound}, f.term.Codes())
		assert.NotEmpty(t, f.dialogs.Notices)
		assert.Equal(t, []string{"https://help.example.com"}, opened)
		assert.Zero(t, f.bootstrapper.Runs())
	})

	t.Run("quiet is silent", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Mode = launchflags.ModeClient
		f.flags.Quiet = true
		f.app.HasMediaSupport = func() bool { return false }
		var opened []string
		f.app.OpenURL = func(url string) error {
			opened = append(opened, url)
			return nil
		}
		f.resolveInitial(t)

		assert.Equal(t, []exitcode.Code{exitcode.FileNotFound}, f.term.Codes())
		assert.Empty(t, f.dialogs.Notices)
		assert.Empty(t, opened)
	})
}

func TestLaunchSingletonConfirmation(t *testing.T) {
	t.Run("user declines", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Mode = launchflags.ModeClient
		f.flags.ConfirmLaunches = true
		f.app.ScanTarget = func(ctx context.Context, name string) (bool, error) {
			return true, nil
		}
		f.dialogs.ConfirmLaunchAnswer = false
		f.resolveInitial(t)

		assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
		assert.Zero(t, f.bootstrapper.Runs())
		assert.Equal(t, []string{"skyclient"}, f.dialogs.ConfirmLaunchFor)
	})

	t.Run("user accepts", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Mode = launchflags.ModeClient
		f.flags.ConfirmLaunches = true
		f.app.ScanTarget = func(ctx context.Context, name string) (bool, error) {
			return true, nil
		}
		f.dialogs.ConfirmLaunchAnswer = true
		f.resolveInitial(t)

		assert.Equal(t, 1, f.bootstrapper.Runs())
		assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
	})

	t.Run("multi-instance skips the check", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Mode = launchflags.ModeClient
		f.flags.ConfirmLaunches = true
		f.flags.MultiInstance = true
		f.app.ScanTarget = func(ctx context.Context, name string) (bool, error) {
			t.Error("scan must not run when multi-instance is allowed")
			return false, nil
		}
		f.resolveInitial(t)

		assert.Equal(t, 1, f.bootstrapper.Runs())
		assert.Empty(t, f.dialogs.ConfirmLaunchFor)
	})

	t.Run("scan failure does not block the launch", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Mode = launchflags.ModeClient
		f.flags.ConfirmLaunches = true
		f.app.ScanTarget = func(ctx context.Context, name string) (bool, error) {
			return false, assert.AnError
		}
		f.resolveInitial(t)

		assert.Equal(t, 1, f.bootstrapper.Runs())
	})
}

func TestLaunchFaultTerminatesOnce(t *testing.T) {
	f := newFixture(t)
	f.flags.Mode = launchflags.ModeClient
	f.bootstrapper.RunErr = assert.AnError
	f.resolveInitial(t)

	assert.Equal(t, []exitcode.Code{exitcode.LaunchFailed}, f.term.Codes())
	assert.NotEmpty(t, f.dialogs.Notices)
}

func TestQuietLaunchEndToEnd(t *testing.T) {
	f := newFixture(t)
	f.flags.Quiet = true
	f.flags.Mode = launchflags.ModeClient

	f.resolveInitial(t)

	require.Len(t, f.term.Codes(), 1, "process terminates exactly once")
	assert.Equal(t, exitcode.Success, f.term.Codes()[0])
	assert.Empty(t, f.dialogs.ProgressLabels, "no progress UI when quiet")
	assert.Equal(t, 1, f.bootstrapper.Runs())
}

func TestInteractiveLaunchShowsProgress(t *testing.T) {
	f := newFixture(t)
	f.flags.Mode = launchflags.ModeClient
	f.resolveInitial(t)

	assert.Len(t, f.dialogs.ProgressLabels, 1)
	require.Len(t, f.opts, 1)
	assert.NotNil(t, f.opts[0].Progress)
}

func TestWatcherFlow(t *testing.T) {
	t.Run("clean completion", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Watcher = true
		f.resolveInitial(t)

		assert.Equal(t, 1, f.watcher.Runs())
		assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
	})

	t.Run("fault still funnels into a single exit", func(t *testing.T) {
		f := newFixture(t)
		f.flags.Watcher = true
		f.watcher.Err = assert.AnError
		f.resolveInitial(t)

		require.Len(t, f.term.Codes(), 1)
	})
}

func TestBackgroundUpdater(t *testing.T) {
	t.Run("forces quiet unattended behavior", func(t *testing.T) {
		f := newFixture(t)
		f.flags.BackgroundUpdater = true
		f.resolveInitial(t)

		assert.True(t, f.flags.Quiet)
		assert.True(t, f.flags.NoLaunch)
		require.Len(t, f.opts, 1)
		assert.True(t, f.opts[0].NoLaunch)
	})

	t.Run("watcher is torn down when the task wins", func(t *testing.T) {
		f := newFixture(t)
		f.flags.BackgroundUpdater = true

		watcherStopped := make(chan struct{})
		f.app.WatchKillEvent = func(ctx context.Context, name string, onSignal func()) error {
			<-ctx.Done()
			close(watcherStopped)
			return nil
		}

		f.resolveInitial(t)

		select {
		case <-watcherStopped:
		case <-time.After(2 * time.Second):
			t.Fatal("kill event watcher was never torn down")
		}
		assert.Zero(t, f.bootstrapper.Cancels(), "cancel must not fire without a signal")
		assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
	})

	t.Run("external signal cancels exactly once", func(t *testing.T) {
		f := newFixture(t)
		f.flags.BackgroundUpdater = true
		f.bootstrapper.Release = make(chan struct{})

		signal := make(chan struct{})
		f.app.WatchKillEvent = func(ctx context.Context, name string, onSignal func()) error {
			select {
			case <-signal:
				onSignal()
			case <-ctx.Done():
			}
			return nil
		}

		done := f.app.ResolveInitialFlow(context.Background())
		close(signal)
		<-done

		assert.Equal(t, 1, f.bootstrapper.Cancels())
		assert.Equal(t, []exitcode.Code{exitcode.Success}, f.term.Codes())
	})

	t.Run("fault exits with install failure", func(t *testing.T) {
		f := newFixture(t)
		f.flags.BackgroundUpdater = true
		f.bootstrapper.RunErr = assert.AnError
		f.resolveInitial(t)

		assert.Equal(t, []exitcode.Code{exitcode.InstallFailed}, f.term.Codes())
	})
}
