//go:build !js

package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenLink hands link to the platform's default opener.
func OpenLink(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", link, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
