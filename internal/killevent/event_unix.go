//go:build !windows

package killevent

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

func socketPath(name string) string {
	return filepath.Join(os.TempDir(), strings.ToLower(name)+".sock")
}

func watch(ctx context.Context, name string, onSignal func()) error {
	path := socketPath(name)
	// A previous watcher that crashed leaves its socket behind; the flock
	// taken by whichever flow owns us guarantees nobody live is listening.
	_ = os.Remove(path)

	ln, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("failed to listen on event socket %s: %w", path, err)
	}
	defer func() {
		_ = ln.Close()
		_ = os.Remove(path)
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-done:
		}
	}()

	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to accept on event socket %s: %w", path, err)
	}
	_ = conn.Close()
	onSignal()
	return nil
}

func signal(name string) error {
	conn, err := net.Dial("unix", socketPath(name))
	if err != nil {
		return fmt.Errorf("no watcher on event %s: %w", name, err)
	}
	return conn.Close()
}
