//go:build windows

package media

import "golang.org/x/sys/windows"

// supported checks for Windows Media Foundation. N editions of Windows
// ship without it and the target cannot start there.
func supported() bool {
	handle, err := windows.LoadLibrary("mfplat.dll")
	if err != nil {
		return false
	}
	_ = windows.FreeLibrary(handle)
	return true
}
