package launchflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, f *Flags)
	}{
		{
			name: "no arguments",
			args: nil,
			want: func(t *testing.T, f *Flags) {
				assert.Equal(t, &Flags{}, f)
			},
		},
		{
			name: "uninstall",
			args: []string{"-uninstall"},
			want: func(t *testing.T, f *Flags) {
				assert.True(t, f.Uninstall)
			},
		},
		{
			name: "background updater with quiet",
			args: []string{"-background-updater", "-quiet"},
			want: func(t *testing.T, f *Flags) {
				assert.True(t, f.BackgroundUpdater)
				assert.True(t, f.Quiet)
				assert.False(t, f.NoLaunch)
			},
		},
		{
			name: "client mode",
			args: []string{"-mode", "client"},
			want: func(t *testing.T, f *Flags) {
				assert.Equal(t, ModeClient, f.Mode)
			},
		},
		{
			name: "studio mode with launch overrides",
			args: []string{"-mode", "studio", "-confirm-launches", "-multi-instance"},
			want: func(t *testing.T, f *Flags) {
				assert.Equal(t, ModeStudio, f.Mode)
				assert.True(t, f.ConfirmLaunches)
				assert.True(t, f.MultiInstance)
			},
		},
		{
			name: "watcher flags",
			args: []string{"-watcher", "-multi-watcher", "-no-launch"},
			want: func(t *testing.T, f *Flags) {
				assert.True(t, f.Watcher)
				assert.True(t, f.MultiWatcher)
				assert.True(t, f.NoLaunch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse("skybound-launcher", tt.args)
			require.NoError(t, err)
			tt.want(t, f)
		})
	}
}

func TestParseRejectsUnknownMode(t *testing.T) {
	_, err := Parse("skybound-launcher", []string{"-mode", "editor"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor")
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	_, err := Parse("skybound-launcher", []string{"-definitely-not-a-flag"})
	assert.Error(t, err)
}
