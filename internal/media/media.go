// Package media checks for the system media components the target program
// cannot run without.
package media

// Supported reports whether the required media components are present.
func Supported() bool {
	return supported()
}
