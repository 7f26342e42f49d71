package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "launcher.toml")

	s, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Meta.Path)

	_, err = os.Stat(path)
	require.NoError(t, err, "settings file should exist after first load")

	assert.Equal(t, "SkyboundClient", s.Targets.ClientBinary)
	assert.Equal(t, "SkyboundStudio", s.Targets.StudioBinary)
	assert.True(t, s.General.ConfirmLaunches)
	assert.False(t, s.General.MultiInstance)
	assert.False(t, s.Telemetry.ErrorReporting)
	assert.NotEmpty(t, s.General.AppDir)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")

	s, err := LoadOrCreate(path)
	require.NoError(t, err)

	s.General.AppDir = "/opt/skybound"
	s.General.DebugLogging = true
	s.General.MultiInstance = true
	s.Targets.PayloadURL = "https://downloads.example.com/payload.bin"
	require.NoError(t, s.Save())

	reloaded, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/skybound", reloaded.General.AppDir)
	assert.True(t, reloaded.General.DebugLogging)
	assert.True(t, reloaded.General.MultiInstance)
	assert.Equal(t, "https://downloads.example.com/payload.bin", reloaded.Targets.PayloadURL)
}

func TestSaveWithoutPath(t *testing.T) {
	s := &Settings{}
	assert.Error(t, s.Save())
}

func TestLogPathLivesUnderAppDir(t *testing.T) {
	s := &Settings{}
	s.General.AppDir = filepath.Join("some", "dir")
	assert.Equal(t, filepath.Join("some", "dir", "logs", "launcher.log"), s.LogPath())
}
