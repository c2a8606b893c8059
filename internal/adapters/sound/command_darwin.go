//go:build darwin

package sound

import "os/exec"

// playerCommand plays a file on macOS using afplay
func playerCommand(path string) (*exec.Cmd, error) {
	return exec.Command("afplay", path), nil
}
