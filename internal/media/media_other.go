//go:build !windows

package media

// supported is always true outside Windows; the media stack there is part
// of the target's own runtime.
func supported() bool {
	return true
}
