package autostart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"

	"github.com/renato0307/despertar/internal/logging"
)

// Manager registers the alarm daemon to start with the user session
type Manager struct {
	app *autostart.App
}

// NewManager creates a manager that launches the current executable with args
func NewManager(args ...string) (*Manager, error) {
	// Get the executable path
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	return &Manager{app: newApp(execPath, args)}, nil
}

func newApp(execPath string, args []string) *autostart.App {
	return &autostart.App{
		Name:        "despertar",
		DisplayName: "Despertar alarm clock",
		Exec:        append([]string{execPath}, args...),
	}
}

// Enabled reports whether autostart is registered
func (m *Manager) Enabled() bool {
	return m.app.IsEnabled()
}

// Command returns the command line registered for autostart
func (m *Manager) Command() []string {
	return m.app.Exec
}

// Set enables or disables autostart. It is a no-op when already in the wanted state.
func (m *Manager) Set(enable bool) error {
	if enable == m.app.IsEnabled() {
		return nil
	}

	if enable {
		if err := m.app.Enable(); err != nil {
			return fmt.Errorf("failed to enable autostart: %w", err)
		}
		logging.Logger.Info("Autostart enabled", "exec", m.app.Exec)
		return nil
	}

	if err := m.app.Disable(); err != nil {
		return fmt.Errorf("failed to disable autostart: %w", err)
	}
	logging.Logger.Info("Autostart disabled")
	return nil
}
