// Package launchflags parses the command-line switches that decide which
// flow the launcher enters. Flags are parsed once at process start and are
// read-only afterwards, with one exception: the background updater forces
// Quiet and NoLaunch on so it can never become interactive.
package launchflags

import (
	"flag"
	"fmt"
)

// Mode values for the -mode flag.
const (
	ModeClient = "client"
	ModeStudio = "studio"
)

// Flags is the snapshot of startup switches.
type Flags struct {
	Uninstall         bool
	Settings          bool
	Menu              bool
	Watcher           bool
	MultiWatcher      bool
	BackgroundUpdater bool
	Quiet             bool
	NoLaunch          bool
	ConfirmLaunches   bool
	MultiInstance     bool

	// Mode is empty when no explicit launch target was requested.
	Mode string
}

// Parse reads args (without the program name) into a Flags snapshot.
func Parse(name string, args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.BoolVar(&f.Uninstall, "uninstall", false, "Uninstall Skybound")
	fs.BoolVar(&f.Settings, "settings", false, "Open the settings window")
	fs.BoolVar(&f.Menu, "menu", false, "Open the launcher menu")
	fs.BoolVar(&f.Watcher, "watcher", false, "Run the background watcher")
	fs.BoolVar(&f.MultiWatcher, "multi-watcher", false, "Run the multi-instance watcher")
	fs.BoolVar(&f.BackgroundUpdater, "background-updater", false, "Run an unattended background update")
	fs.BoolVar(&f.Quiet, "quiet", false, "Suppress all dialogs and sounds")
	fs.BoolVar(&f.NoLaunch, "no-launch", false, "Update without starting the target")
	fs.BoolVar(&f.ConfirmLaunches, "confirm-launches", false, "Ask before launching when the target already runs")
	fs.BoolVar(&f.MultiInstance, "multi-instance", false, "Allow more than one running target instance")
	fs.StringVar(&f.Mode, "mode", "", "Launch target: client or studio")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	switch f.Mode {
	case "", ModeClient, ModeStudio:
	default:
		return nil, fmt.Errorf("unknown -mode value %q", f.Mode)
	}

	return f, nil
}
