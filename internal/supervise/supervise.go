// Package supervise runs asynchronous flow work detached from the dispatch
// goroutine under uniform fault handling. A supervised task can fail or
// panic without the caller ever observing it on its own stack: the fault is
// logged, forwarded to crash reporting, handed to the task's OnFault
// callback, and then OnFinally runs exactly once as the last step. Flows
// wire OnFinally to the exit funnel, which is how background work and the
// dispatcher agree on a single termination point.
package supervise

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/skyboundapp/skybound-launcher/internal/telemetry"
)

// Task is one unit of supervised work.
type Task struct {
	// Label names the task in logs and crash reports.
	Label string
	// Work is the fallible operation. A panic counts as a fault.
	Work func() error
	// OnFault runs at most once, with the fault, before OnFinally.
	OnFault func(error)
	// OnFinally runs exactly once, after fault handling, success or not.
	OnFinally func()
}

// Go starts the task on its own goroutine and returns immediately. The
// returned channel closes when the task and its callbacks have finished,
// for callers that need to keep the process alive until then.
func Go(t Task) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		run(t)
	}()
	return done
}

func run(t Task) {
	fault := capturePanics(t.Label, "work", t.Work)

	if fault != nil {
		log.Error().Err(fault).Str("task", t.Label).Msg("supervised task faulted")
		telemetry.Capture(fault)
		if t.OnFault != nil {
			if err := capturePanics(t.Label, "fault handler", func() error {
				t.OnFault(fault)
				return nil
			}); err != nil {
				log.Error().Err(err).Str("task", t.Label).Msg("fault handler panicked")
				telemetry.Capture(err)
			}
		}
	} else {
		log.Info().Str("task", t.Label).Msg("supervised task completed")
	}

	if t.OnFinally != nil {
		if err := capturePanics(t.Label, "finalizer", func() error {
			t.OnFinally()
			return nil
		}); err != nil {
			log.Error().Err(err).Str("task", t.Label).Msg("finalizer panicked")
			telemetry.Capture(err)
		}
	}
}

// capturePanics runs fn and converts a panic into an error so nothing ever
// unwinds past the supervisor.
func capturePanics(label, stage string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s %s: %v", label, stage, r)
		}
	}()
	return fn()
}
