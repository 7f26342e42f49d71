package launcher

import "context"

// This file defines the narrow surfaces the flows consume from their
// collaborators. The core only sees results: a chosen next action, a
// confirmation, a keep-data choice. It never inspects dialog internals,
// install file operations, or the bootstrapper's pipeline.

// InstallResult is what the install wizard reports after it closes.
type InstallResult struct {
	// Completed is false when the user cancelled or abandoned the wizard.
	Completed bool
	// NextAction is what the user chose to do after installing.
	NextAction Intent
	// InstallDir is the chosen install location.
	InstallDir string
}

// UninstallResult is what the uninstall confirmation reports.
type UninstallResult struct {
	Confirmed bool
	KeepData  bool
}

// ProgressFunc receives download/launch progress for a progress UI.
type ProgressFunc func(complete, total int64)

// Dialogs is the modal UI surface. Every method blocks until the dialog
// closes and returns only its result.
type Dialogs interface {
	Install() InstallResult
	ConfirmUninstall() UninstallResult
	Menu() Intent
	// ConfirmLaunch asks whether to launch anyway when the target already
	// appears to be running.
	ConfirmLaunch(target string) bool
	Notice(message string)
	// Progress opens a progress UI and returns the callback that feeds it.
	Progress(label string) ProgressFunc
}

// SettingsUI is the settings window collaborator.
type SettingsUI interface {
	// Show displays the settings window and blocks until it closes.
	Show()
	// FocusExisting brings another process's settings window forward.
	FocusExisting()
}

// Installer performs the actual install and uninstall file operations.
type Installer interface {
	// CheckInstallLocation reports whether the app is installed.
	CheckInstallLocation() bool
	DoInstall(dir string) error
	DoUninstall(keepData bool) error
}

// Bootstrapper runs the target program's download/verify/launch pipeline.
// Run is awaited under supervision; Cancel asks it to stop cooperatively,
// after which Run returns nil rather than a fault.
type Bootstrapper interface {
	Run() error
	Cancel()
}

// BootstrapOptions tune a bootstrapper construction.
type BootstrapOptions struct {
	// NoLaunch updates the installation without starting the target.
	NoLaunch bool
	// Progress receives download progress, nil for unattended runs.
	Progress ProgressFunc
}

// Runner is the watcher collaborator: presence reporting or process
// monitoring that runs until its subject goes away.
type Runner interface {
	Run(ctx context.Context) error
}
