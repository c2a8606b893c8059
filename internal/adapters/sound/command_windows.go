//go:build windows

package sound

import (
	"fmt"
	"os/exec"
	"strings"
)

// playerCommand plays a file on Windows using PowerShell
func playerCommand(path string) (*exec.Cmd, error) {
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(path, "'", "''"))
	return exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script), nil
}
