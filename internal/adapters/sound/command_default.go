//go:build !darwin && !linux && !windows

package sound

import (
	"errors"
	"os/exec"
)

// playerCommand has no implementation on unsupported platforms
func playerCommand(path string) (*exec.Cmd, error) {
	return nil, errors.New("command audio backend is not supported on this platform")
}
