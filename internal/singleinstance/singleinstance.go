// Package singleinstance enforces at-most-one running instance of a given
// launcher role (installer, uninstaller, settings) across all processes on
// the machine. The lock is a named OS primitive that the kernel revokes
// automatically when its owner exits, so a crashed holder never wedges the
// role: a Windows named mutex, or an advisory flock on unix (the lock lives
// on the open descriptor, not on the file's presence).
package singleinstance

import "sync"

// appID prefixes every lock name. These names are shared with every other
// launcher process on the system and must not change between releases.
const appID = "Skybound"

// Role suffixes for the locks the flows take.
const (
	RoleInstaller   = "Installer"
	RoleUninstaller = "Uninstaller"
	RoleSettings    = "Settings"
)

// Handle wraps an acquired (or contended) named lock.
type Handle struct {
	name        string
	acquired    bool
	release     func()
	releaseOnce sync.Once
}

// Acquire attempts to claim the named lock for a role without blocking. A
// contended lock is not an error: the returned handle simply reports
// Acquired() == false. Release must run on every exit path of the scope
// that called Acquire, whichever way acquisition went.
func Acquire(role string) (*Handle, error) {
	name := appID + "-" + role
	release, acquired, err := acquire(name)
	if err != nil {
		return nil, err
	}
	return &Handle{name: name, acquired: acquired, release: release}, nil
}

// Name returns the system-wide lock name.
func (h *Handle) Name() string { return h.name }

// Acquired reports whether this handle owns the lock.
func (h *Handle) Acquired() bool { return h.acquired }

// Release gives the lock up. Idempotent.
func (h *Handle) Release() {
	h.releaseOnce.Do(func() {
		if h.release != nil {
			h.release()
		}
	})
}
