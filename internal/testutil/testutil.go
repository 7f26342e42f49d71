// Package testutil provides the scripted collaborator doubles the package
// tests drive flows with.
package testutil

import (
	"context"
	"sync"

	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/launcher"
)

// Terminator records exit funnel calls instead of exiting.
type Terminator struct {
	mu    sync.Mutex
	codes []exitcode.Code
}

func (t *Terminator) Terminate(code exitcode.Code) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.codes = append(t.codes, code)
}

// Codes returns every code the funnel received, in order.
func (t *Terminator) Codes() []exitcode.Code {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]exitcode.Code(nil), t.codes...)
}

// Dialogs is a scripted launcher.Dialogs.
type Dialogs struct {
	InstallResult       launcher.InstallResult
	UninstallResult     launcher.UninstallResult
	MenuAction          launcher.Intent
	ConfirmLaunchAnswer bool

	mu                sync.Mutex
	InstallCalls      int
	UninstallCalls    int
	MenuCalls         int
	Notices           []string
	ConfirmLaunchFor  []string
	ProgressLabels    []string
	ProgressCallbacks int
}

func (d *Dialogs) Install() launcher.InstallResult {
	d.mu.Lock()
	d.InstallCalls++
	d.mu.Unlock()
	return d.InstallResult
}

func (d *Dialogs) ConfirmUninstall() launcher.UninstallResult {
	d.mu.Lock()
	d.UninstallCalls++
	d.mu.Unlock()
	return d.UninstallResult
}

func (d *Dialogs) Menu() launcher.Intent {
	d.mu.Lock()
	d.MenuCalls++
	d.mu.Unlock()
	return d.MenuAction
}

func (d *Dialogs) ConfirmLaunch(target string) bool {
	d.mu.Lock()
	d.ConfirmLaunchFor = append(d.ConfirmLaunchFor, target)
	d.mu.Unlock()
	return d.ConfirmLaunchAnswer
}

func (d *Dialogs) Notice(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Notices = append(d.Notices, message)
}

func (d *Dialogs) Progress(label string) launcher.ProgressFunc {
	d.mu.Lock()
	d.ProgressLabels = append(d.ProgressLabels, label)
	d.mu.Unlock()
	return func(complete, total int64) {
		d.mu.Lock()
		d.ProgressCallbacks++
		d.mu.Unlock()
	}
}

// SettingsUI counts settings window interactions.
type SettingsUI struct {
	ShowCalls  int
	FocusCalls int
}

func (s *SettingsUI) Show()          { s.ShowCalls++ }
func (s *SettingsUI) FocusExisting() { s.FocusCalls++ }

// Installer is a scripted launcher.Installer.
type Installer struct {
	Installed    bool
	InstallErr   error
	UninstallErr error

	InstallDirs   []string
	UninstallKeep []bool
}

func (i *Installer) CheckInstallLocation() bool { return i.Installed }

func (i *Installer) DoInstall(dir string) error {
	i.InstallDirs = append(i.InstallDirs, dir)
	return i.InstallErr
}

func (i *Installer) DoUninstall(keepData bool) error {
	i.UninstallKeep = append(i.UninstallKeep, keepData)
	return i.UninstallErr
}

// Bootstrapper is a scripted launcher.Bootstrapper. When Release is set,
// Run blocks until Release is closed or Cancel is called.
type Bootstrapper struct {
	RunErr  error
	Release chan struct{}

	mu        sync.Mutex
	runs      int
	cancels   int
	cancelled chan struct{}
	once      sync.Once
}

func NewBootstrapper() *Bootstrapper {
	return &Bootstrapper{cancelled: make(chan struct{})}
}

func (b *Bootstrapper) Run() error {
	b.mu.Lock()
	b.runs++
	b.mu.Unlock()

	if b.Release != nil {
		select {
		case <-b.Release:
		case <-b.cancelled:
			return nil
		}
	}
	return b.RunErr
}

func (b *Bootstrapper) Cancel() {
	b.mu.Lock()
	b.cancels++
	b.mu.Unlock()
	b.once.Do(func() { close(b.cancelled) })
}

func (b *Bootstrapper) Runs() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.runs
}

func (b *Bootstrapper) Cancels() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancels
}

// Runner is a scripted launcher.Runner.
type Runner struct {
	Err error

	mu   sync.Mutex
	runs int
}

func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()
	return r.Err
}

func (r *Runner) Runs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}
