package launcher

// Intent is the resolved startup (or post-dialog) decision that drives flow
// selection. A process acts on at most one intent in its lifetime.
type Intent int

const (
	IntentNone Intent = iota
	IntentLaunchSettings
	IntentLaunchTarget
	IntentLaunchTargetAlt
	IntentUninstall
	IntentMenu
	IntentWatcher
	IntentMultiWatcher
	IntentBackgroundUpdater
	IntentExit
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentLaunchSettings:
		return "launch settings"
	case IntentLaunchTarget:
		return "launch target"
	case IntentLaunchTargetAlt:
		return "launch alternate target"
	case IntentUninstall:
		return "uninstall"
	case IntentMenu:
		return "menu"
	case IntentWatcher:
		return "watcher"
	case IntentMultiWatcher:
		return "multi-instance watcher"
	case IntentBackgroundUpdater:
		return "background updater"
	case IntentExit:
		return "exit"
	default:
		return "unknown"
	}
}

// LaunchMode selects which target binary a launch starts. ModeNone is never
// a valid execution argument; a launch asked to run it fails fast.
type LaunchMode int

const (
	ModeNone LaunchMode = iota
	ModePrimary
	ModeSecondary
)

func (m LaunchMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModePrimary:
		return "primary"
	case ModeSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}
