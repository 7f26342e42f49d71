package procscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRunningUnknownName(t *testing.T) {
	running, err := IsRunning(context.Background(), "skybound-no-such-process-a8f2c")
	require.NoError(t, err)
	assert.False(t, running)
}

func TestCountRunningFindsOwnProcess(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	count, err := CountRunning(context.Background(), filepath.Base(exe))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1, "the test binary itself is running")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "skyboundclient", normalize("SkyboundClient.exe"))
	assert.Equal(t, "skyboundclient", normalize("  SkyboundClient "))
	assert.Equal(t, "skyboundclient", normalize("SKYBOUNDCLIENT"))
}
