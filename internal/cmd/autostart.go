package cmd

import (
	"fmt"
	"strings"

	"github.com/renato0307/despertar/internal/adapters/autostart"
)

// AutostartCmd registers the alarm daemon with the user session
type AutostartCmd struct {
	Disable AutostartDisableCmd `cmd:"disable" help:"Stop starting the daemon with your session"`
	Enable  AutostartEnableCmd  `cmd:"enable" help:"Start the daemon with your session"`
	Status  AutostartStatusCmd  `cmd:"status" help:"Show whether autostart is enabled" default:"1"`
}

func daemonAutostart() (*autostart.Manager, error) {
	manager, err := autostart.NewManager("daemon")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable: %w", err)
	}
	return manager, nil
}

// AutostartEnableCmd enables autostart
type AutostartEnableCmd struct{}

// Run executes the enable command
func (a *AutostartEnableCmd) Run(cli *CLI) error {
	manager, err := daemonAutostart()
	if err != nil {
		return err
	}
	if err := manager.Set(true); err != nil {
		return err
	}
	fmt.Printf("Autostart enabled: %s\n", strings.Join(manager.Command(), " "))
	return nil
}

// AutostartDisableCmd disables autostart
type AutostartDisableCmd struct{}

// Run executes the disable command
func (a *AutostartDisableCmd) Run(cli *CLI) error {
	manager, err := daemonAutostart()
	if err != nil {
		return err
	}
	if err := manager.Set(false); err != nil {
		return err
	}
	fmt.Println("Autostart disabled")
	return nil
}

// AutostartStatusCmd shows the autostart state
type AutostartStatusCmd struct{}

// Run executes the status command
func (a *AutostartStatusCmd) Run(cli *CLI) error {
	manager, err := daemonAutostart()
	if err != nil {
		return err
	}
	if manager.Enabled() {
		fmt.Printf("Autostart: enabled (%s)\n", strings.Join(manager.Command(), " "))
	} else {
		fmt.Println("Autostart: disabled")
	}
	return nil
}
