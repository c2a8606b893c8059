//go:build linux

package sound

import (
	"errors"
	"os/exec"
)

// playerCommand plays a file on Linux using paplay (PulseAudio) or aplay (ALSA)
func playerCommand(path string) (*exec.Cmd, error) {
	for _, player := range []string{"paplay", "aplay", "pw-play"} {
		if bin, err := exec.LookPath(player); err == nil {
			return exec.Command(bin, path), nil
		}
	}
	return nil, errors.New("no audio player found (paplay, aplay, pw-play)")
}
