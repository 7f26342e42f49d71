// Package exitcode defines the launcher's process exit codes and the single
// funnel every flow terminates through.
package exitcode

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Code is the status the process exits with.
type Code int

// Exit codes for the launcher
const (
	Success          Code = 0 // Flow completed normally
	UserExit         Code = 1 // User cancelled a modal flow
	InvalidOperation Code = 2 // Programmer or flag-combination error
	FileNotFound     Code = 3 // Required file or system component missing
	InstallFailed    Code = 4 // Install or uninstall operation failed
	AlreadyRunning   Code = 5 // Another instance holds the single-instance lock
	LaunchFailed     Code = 6 // Target process could not be started
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case UserExit:
		return "user exit"
	case InvalidOperation:
		return "invalid operation"
	case FileNotFound:
		return "file not found"
	case InstallFailed:
		return "install failed"
	case AlreadyRunning:
		return "already running"
	case LaunchFailed:
		return "launch failed"
	default:
		return "unknown"
	}
}

// Funnel is the one place the process exits through. Every flow's terminal
// path ends here, whether it ran on the dispatch goroutine or inside a
// supervised task's finalizer. Repeat calls after the first are ignored so a
// flow and its finalizer racing each other cannot exit twice.
type Funnel struct {
	once     sync.Once
	flushers []func()
	exit     func(int)
}

// NewFunnel returns a funnel that runs the given flush hooks (log sinks,
// telemetry) before exiting the process.
func NewFunnel(flushers ...func()) *Funnel {
	return &Funnel{flushers: flushers, exit: os.Exit}
}

// Exit flushes and terminates the process with the given code. Only the
// first call has any effect.
func (f *Funnel) Exit(code Code) {
	f.once.Do(func() {
		log.Info().Int("code", int(code)).Str("status", code.String()).Msg("terminating")
		for _, flush := range f.flushers {
			flush()
		}
		f.exit(int(code))
	})
}
