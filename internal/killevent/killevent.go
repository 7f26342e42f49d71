// Package killevent implements the named, externally-signalable event that
// lets any process on the system stop a running background update. The
// event is auto-resetting: one raise wakes at most one watcher, and a
// watcher fires its callback at most once before exiting.
//
// On Windows this is a named auto-reset event object; on unix it is a
// socket under the temp dir where any accepted connection counts as the
// signal. The name is shared between independently started launcher
// processes and must stay stable across releases.
package killevent

import "context"

// BackgroundUpdater is the event name the background-updater flow watches.
const BackgroundUpdater = "Skybound-BackgroundUpdaterKillEvent"

// Watch blocks until the named event is raised or ctx is cancelled. It is
// meant to run on its own goroutine. When the event fires, onSignal is
// invoked exactly once and Watch returns nil; when ctx wins instead, Watch
// returns without invoking onSignal. The watcher holds no OS resources
// after it returns.
func Watch(ctx context.Context, name string, onSignal func()) error {
	return watch(ctx, name, onSignal)
}

// Signal raises the named event from any process. Raising an event nobody
// is watching is not an error on Windows; on unix it reports that no
// watcher was listening.
func Signal(name string) error {
	return signal(name)
}
