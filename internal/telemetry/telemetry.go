// Package telemetry provides opt-in crash reporting via Sentry. It is the
// process-wide exception finalizer: supervised task faults are forwarded
// here before the flow funnels into termination. Usernames are stripped
// from reported paths before transmission.
package telemetry

import (
	"regexp"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	flushTimeout = 2 * time.Second
	// sentryDSN only contains the public key needed to authenticate the envelope.
	sentryDSN = "https://7f21c8d04fa3b8e2a6c19e5d30b77a41@o4508112233445566.ingest.de.sentry.io/4508112237770801"
)

var (
	enabled      bool
	sentryWriter *sentryzerolog.Writer
	closeOnce    sync.Once

	// Patterns to strip usernames from file paths
	homePathRe    = regexp.MustCompile(`(?i)/home/[^/]+/`)
	usersPathRe   = regexp.MustCompile(`(?i)/Users/[^/]+/`)
	windowsUserRe = regexp.MustCompile(`(?i)[a-zA-Z]:\\Users\\[^\\]+\\`)
)

// Init enables Sentry error reporting. It is a no-op when the user has not
// opted in via settings.
func Init(reportingEnabled bool, appVersion string) error {
	if !reportingEnabled {
		log.Debug().Msg("error reporting disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDSN,
		Release:          "skybound-launcher@" + appVersion,
		AttachStacktrace: true,
		SendDefaultPII:   false,
		ServerName:       "",
		MaxBreadcrumbs:   0,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return sanitizeEvent(event)
		},
	})
	if err != nil {
		return err
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
	})

	sentryWriter, err = sentryzerolog.NewWithHub(sentry.CurrentHub(), sentryzerolog.Options{
		Levels:          []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		FlushTimeout:    flushTimeout,
		WithBreadcrumbs: false,
	})
	if err != nil {
		return err
	}

	enabled = true
	log.Info().Msg("error reporting enabled")
	return nil
}

// Writer returns the zerolog sink that forwards error-level events to
// Sentry, or nil when reporting is disabled.
func Writer() zerolog.LevelWriter {
	if !enabled {
		return nil
	}
	return sentryWriter
}

// Capture forwards a fault to Sentry. This is the finalizer the task
// supervisor hands every captured error to.
func Capture(err error) {
	if !enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush sends all pending events. Called by the exit funnel before the
// process terminates.
func Flush() {
	if !enabled {
		return
	}
	sentry.Flush(flushTimeout)
}

// Close flushes pending events and shuts down reporting. Safe to call more
// than once.
func Close() {
	if !enabled {
		return
	}
	closeOnce.Do(func() {
		_ = sentryWriter.Close()
		sentry.Flush(flushTimeout)
	})
}

// Enabled reports whether crash reporting is active.
func Enabled() bool {
	return enabled
}

// sanitizeEvent removes PII from events before sending.
func sanitizeEvent(event *sentry.Event) *sentry.Event {
	event.ServerName = ""

	for i := range event.Exception {
		if event.Exception[i].Stacktrace == nil {
			continue
		}
		for j := range event.Exception[i].Stacktrace.Frames {
			frame := &event.Exception[i].Stacktrace.Frames[j]
			frame.AbsPath = sanitizePath(frame.AbsPath)
			frame.Filename = sanitizePath(frame.Filename)
		}
	}

	event.Message = sanitizePath(event.Message)

	for k, v := range event.Extra {
		if s, ok := v.(string); ok {
			event.Extra[k] = sanitizePath(s)
		}
	}

	return event
}

// sanitizePath removes usernames from file paths.
func sanitizePath(path string) string {
	if path == "" {
		return path
	}

	result := homePathRe.ReplaceAllString(path, "/home/<user>/")
	result = usersPathRe.ReplaceAllString(result, "/Users/<user>/")
	result = windowsUserRe.ReplaceAllString(result, "C:\\Users\\<user>\\")

	return result
}
