// Package procscan checks whether a target program is already running by
// scanning process names. Detection is best-effort only: the scan can see a
// process that is mid-exit, so callers must treat a positive hit as "maybe"
// and resolve it with the user rather than as authoritative.
package procscan

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// IsRunning reports whether any process on the system has the given
// executable name. The comparison is case-insensitive and ignores a
// trailing ".exe" so the same target name works on every platform.
func IsRunning(ctx context.Context, name string) (bool, error) {
	count, err := CountRunning(ctx, name)
	return count > 0, err
}

// CountRunning returns how many processes carry the given executable name.
func CountRunning(ctx context.Context, name string) (int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}

	want := normalize(name)
	count := 0
	for _, p := range procs {
		// Processes come and go during the scan; a vanished one is not
		// an error.
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if normalize(pname) == want {
			count++
		}
	}
	return count, nil
}

func normalize(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".exe")
}
