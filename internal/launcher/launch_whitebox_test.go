package launcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skyboundapp/skybound-launcher/internal/exitcode"
	"github.com/skyboundapp/skybound-launcher/internal/launchflags"
	"github.com/skyboundapp/skybound-launcher/internal/settings"
)

// A launch without a mode is a programming error and must fail before any
// dialog, scan, or bootstrapper construction happens.
func TestLaunchWithoutModeFailsFast(t *testing.T) {
	var codes []exitcode.Code
	a := New(&App{
		Flags:    &launchflags.Flags{},
		Settings: &settings.Settings{},
		HasMediaSupport: func() bool {
			t.Error("media check must not run")
			return true
		},
		NewBootstrapper: func(LaunchMode, BootstrapOptions) (Bootstrapper, error) {
			t.Error("bootstrapper must not be constructed")
			return nil, nil
		},
		Terminate: func(c exitcode.Code) { codes = append(codes, c) },
	})

	<-a.runLaunch(context.Background(), ModeNone)

	require.Equal(t, []exitcode.Code{exitcode.InvalidOperation}, codes)
}
