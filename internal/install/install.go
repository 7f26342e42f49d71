// Package install performs the launcher's install and uninstall file
// operations. The flows drive it through the Installer interface and only
// ever see success or failure.
package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const markerFile = ".installed"

// Manager owns the installation rooted at AppDir. Saved user data lives in
// the data subdirectory so an uninstall can preserve it.
type Manager struct {
	AppDir string
}

// NewManager builds a Manager for the configured app dir.
func NewManager(appDir string) *Manager {
	return &Manager{AppDir: appDir}
}

func (m *Manager) markerPath() string {
	return filepath.Join(m.AppDir, markerFile)
}

// DataDir is the subdirectory preserved by a keep-data uninstall.
func (m *Manager) DataDir() string {
	return filepath.Join(m.AppDir, "data")
}

// CheckInstallLocation reports whether a valid installation exists. Both
// the marker and the directory have to be present; a leftover marker after
// a manual delete does not count.
func (m *Manager) CheckInstallLocation() bool {
	if _, err := os.Stat(m.markerPath()); err != nil {
		return false
	}
	info, err := os.Stat(m.AppDir)
	return err == nil && info.IsDir()
}

// DoInstall creates the installation at dir and records it as the app dir.
// The launcher copies itself in so installed shortcuts survive deleting
// the downloaded binary.
func (m *Manager) DoInstall(dir string) error {
	if dir == "" {
		dir = m.AppDir
	}
	m.AppDir = dir

	if err := os.MkdirAll(m.DataDir(), 0755); err != nil {
		return fmt.Errorf("failed to create install dir: %w", err)
	}

	if err := m.copySelf(dir); err != nil {
		return err
	}

	if err := os.WriteFile(m.markerPath(), []byte(dir+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write install marker: %w", err)
	}

	log.Info().Str("dir", dir).Msg("installed")
	return nil
}

// DoUninstall removes the installation. With keepData the data directory
// survives; everything else goes.
func (m *Manager) DoUninstall(keepData bool) error {
	if !keepData {
		if err := os.RemoveAll(m.AppDir); err != nil {
			return fmt.Errorf("failed to remove install dir: %w", err)
		}
		log.Info().Str("dir", m.AppDir).Msg("uninstalled")
		return nil
	}

	entries, err := os.ReadDir(m.AppDir)
	if err != nil {
		return fmt.Errorf("failed to read install dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() == "data" {
			continue
		}
		if err := os.RemoveAll(filepath.Join(m.AppDir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}

	log.Info().Str("dir", m.AppDir).Msg("uninstalled, data kept")
	return nil
}

// copySelf copies the running executable into the install dir.
func (m *Manager) copySelf(dir string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}

	src, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to open own executable: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, filepath.Base(exePath))
	dst, err := os.OpenFile(dstPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy executable: %w", err)
	}
	return nil
}
