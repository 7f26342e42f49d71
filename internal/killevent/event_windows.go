//go:build windows

package killevent

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

// pollInterval bounds how long teardown can lag behind ctx cancellation
// while the goroutine sits in WaitForSingleObject.
const pollIntervalMs = 250

func openEvent(name string) (windows.Handle, error) {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, fmt.Errorf("failed to encode event name: %w", err)
	}
	// Auto-reset (manualReset=0), initially unsignaled. CreateEvent opens
	// the existing object when another process already made it.
	handle, err := windows.CreateEvent(nil, 0, 0, name16)
	if err != nil && handle == 0 {
		return 0, fmt.Errorf("failed to create event %s: %w", name, err)
	}
	return handle, nil
}

func watch(ctx context.Context, name string, onSignal func()) error {
	handle, err := openEvent(name)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(handle)

	for {
		event, err := windows.WaitForSingleObject(handle, pollIntervalMs)
		if err != nil {
			return fmt.Errorf("failed to wait on event %s: %w", name, err)
		}
		switch event {
		case windows.WAIT_OBJECT_0:
			onSignal()
			return nil
		case uint32(windows.WAIT_TIMEOUT):
			if ctx.Err() != nil {
				return nil
			}
		default:
			return fmt.Errorf("unexpected wait result %d on event %s", event, name)
		}
	}
}

func signal(name string) error {
	handle, err := openEvent(name)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(handle)

	if err := windows.SetEvent(handle); err != nil {
		return fmt.Errorf("failed to signal event %s: %w", name, err)
	}
	return nil
}
