//go:build windows

package singleinstance

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// acquire claims a named mutex. Windows reports ERROR_ALREADY_EXISTS when
// another process created the mutex first; the OS abandons the mutex if its
// owner dies, which is exactly the crash-safety the lock relies on.
func acquire(name string) (func(), bool, error) {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode lock name: %w", err)
	}

	handle, err := windows.CreateMutex(nil, true, name16)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		// Another process owns it. Drop our reference straight away.
		if handle != 0 {
			_ = windows.CloseHandle(handle)
		}
		return func() {}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create mutex %s: %w", name, err)
	}

	release := func() {
		_ = windows.ReleaseMutex(handle)
		_ = windows.CloseHandle(handle)
	}
	return release, true, nil
}
