//go:build !windows

package prompt

import "fmt"

// selectFolder asks for an install path on the console.
func (c *Console) selectFolder(defaultPath string) (string, error) {
	fmt.Fprintf(c.out, "Install folder [%s]: ", defaultPath)
	if path := c.readLine(); path != "" {
		return path, nil
	}
	return defaultPath, nil
}
