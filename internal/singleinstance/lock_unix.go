//go:build !windows

package singleinstance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// acquire claims a non-blocking flock on a namespaced file under the temp
// dir. The file is only an anchor for the lock: its presence means nothing,
// and the kernel drops the flock the moment the owning process exits.
func acquire(name string) (func(), bool, error) {
	path := filepath.Join(os.TempDir(), strings.ToLower(name)+".lock")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		_ = f.Close()
		return func() {}, false, nil
	}
	if err != nil {
		_ = f.Close()
		return nil, false, fmt.Errorf("failed to flock %s: %w", path, err)
	}

	release := func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}
	return release, true, nil
}
