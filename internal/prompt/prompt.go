// Package prompt implements the launcher's dialog collaborators on the
// console: the install wizard, uninstall confirmation, menu, notices, and a
// line-based progress display. Flows only ever see the results.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skyboundapp/skybound-launcher/internal/launcher"
	"github.com/skyboundapp/skybound-launcher/internal/settings"
)

// Console implements launcher.Dialogs over stdin/stdout.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	sound func(cue string)

	// DefaultInstallDir seeds the install wizard's folder choice.
	DefaultInstallDir string
}

// NewConsole builds the console dialog set. sound may be nil.
func NewConsole(defaultInstallDir string, sound func(string)) *Console {
	return &Console{
		in:                bufio.NewReader(os.Stdin),
		out:               os.Stdout,
		sound:             sound,
		DefaultInstallDir: defaultInstallDir,
	}
}

func (c *Console) play(cue string) {
	if c.sound != nil {
		c.sound(cue)
	}
}

func (c *Console) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question.
func (c *Console) confirm(question string) bool {
	fmt.Fprintf(c.out, "%s (y/n): ", question)
	response := strings.ToLower(c.readLine())
	confirmed := response == "y" || response == "yes"
	if confirmed || response == "n" || response == "no" {
		c.play("select")
	}
	return confirmed
}

// Install runs the install wizard and reports what the user decided.
func (c *Console) Install() launcher.InstallResult {
	fmt.Fprintf(c.out, "Welcome to %s!\n\n", settings.AppName)

	if !c.confirm("Install " + settings.AppName + " now?") {
		return launcher.InstallResult{}
	}

	dir, err := c.selectFolder(c.DefaultInstallDir)
	if err != nil || dir == "" {
		dir = c.DefaultInstallDir
	}

	fmt.Fprintln(c.out, "\nWhat would you like to do after installing?")
	fmt.Fprintln(c.out, "  1) Launch", settings.AppName)
	fmt.Fprintln(c.out, "  2) Launch", settings.AppName, "Studio")
	fmt.Fprintln(c.out, "  3) Open settings")
	fmt.Fprintln(c.out, "  4) Nothing, just close")
	fmt.Fprint(c.out, "Choice [1]: ")

	next := launcher.IntentLaunchTarget
	switch c.readLine() {
	case "2":
		next = launcher.IntentLaunchTargetAlt
	case "3":
		next = launcher.IntentLaunchSettings
	case "4":
		next = launcher.IntentNone
	}

	return launcher.InstallResult{
		Completed:  true,
		NextAction: next,
		InstallDir: dir,
	}
}

// ConfirmUninstall asks for confirmation and the keep-data choice.
func (c *Console) ConfirmUninstall() launcher.UninstallResult {
	if !c.confirm("Uninstall " + settings.AppName + "?") {
		return launcher.UninstallResult{}
	}
	keep := c.confirm("Keep your saved data?")
	return launcher.UninstallResult{Confirmed: true, KeepData: keep}
}

// Menu shows the launcher menu and returns the chosen action.
func (c *Console) Menu() launcher.Intent {
	fmt.Fprintf(c.out, "%s launcher\n", settings.AppName)
	fmt.Fprintln(c.out, "  1) Launch", settings.AppName)
	fmt.Fprintln(c.out, "  2) Launch", settings.AppName, "Studio")
	fmt.Fprintln(c.out, "  3) Settings")
	fmt.Fprintln(c.out, "  4) Exit")
	fmt.Fprint(c.out, "Choice [1]: ")

	switch c.readLine() {
	case "2":
		return launcher.IntentLaunchTargetAlt
	case "3":
		return launcher.IntentLaunchSettings
	case "4":
		return launcher.IntentExit
	default:
		return launcher.IntentLaunchTarget
	}
}

// ConfirmLaunch asks whether to launch while the target already runs.
func (c *Console) ConfirmLaunch(target string) bool {
	fmt.Fprintf(c.out, "%s appears to be running already.\n", target)
	return c.confirm("Launch another instance anyway?")
}

// Notice shows a message and waits for acknowledgement.
func (c *Console) Notice(message string) {
	fmt.Fprintln(c.out, message)
	fmt.Fprint(c.out, "Press Enter to continue...")
	c.readLine()
}

// Progress returns a callback that renders a single updating line.
func (c *Console) Progress(label string) launcher.ProgressFunc {
	fmt.Fprintln(c.out, label)
	lastPct := -1
	return func(complete, total int64) {
		if total <= 0 {
			return
		}
		pct := int(float64(complete) / float64(total) * 100)
		if pct != lastPct {
			fmt.Fprintf(c.out, "\r%d%% (%d/%d bytes)", pct, complete, total)
			lastPct = pct
		}
		if complete >= total {
			fmt.Fprintln(c.out)
		}
	}
}

// SettingsConsole implements launcher.SettingsUI on the console.
type SettingsConsole struct {
	out      io.Writer
	in       *bufio.Reader
	settings *settings.Settings
}

// NewSettingsConsole builds the console settings window.
func NewSettingsConsole(s *settings.Settings) *SettingsConsole {
	return &SettingsConsole{
		out:      os.Stdout,
		in:       bufio.NewReader(os.Stdin),
		settings: s,
	}
}

// Show displays the current settings and blocks until dismissed.
func (s *SettingsConsole) Show() {
	fmt.Fprintf(s.out, "%s settings (%s)\n", settings.AppName, s.settings.Meta.Path)
	fmt.Fprintf(s.out, "  confirm launches: %v\n", s.settings.General.ConfirmLaunches)
	fmt.Fprintf(s.out, "  multi-instance:   %v\n", s.settings.General.MultiInstance)
	fmt.Fprintf(s.out, "  debug logging:    %v\n", s.settings.General.DebugLogging)
	fmt.Fprintf(s.out, "  error reporting:  %v\n", s.settings.Telemetry.ErrorReporting)
	fmt.Fprint(s.out, "Press Enter to close...")
	_, _ = s.in.ReadString('\n')
}

// FocusExisting points the user at the settings window another launcher
// process already has open.
func (s *SettingsConsole) FocusExisting() {
	fmt.Fprintf(s.out, "%s settings are already open in another window.\n", settings.AppName)
}
