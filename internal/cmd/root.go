package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"DESPERTAR_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"DESPERTAR_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"DESPERTAR_MAX_LOG_FILES"`

	Run       RunCmd       `cmd:"" help:"Start the despertar TUI (default)" default:"1"`
	Daemon    DaemonCmd    `cmd:"daemon" help:"Ring alarms in the background without a UI"`
	Alarms    AlarmsCmd    `cmd:"alarms" help:"Manage alarms (list, view, add, edit, toggle, del)"`
	Sounds    SoundsCmd    `cmd:"sounds" help:"List and preview alarm sounds"`
	Export    ExportCmd    `cmd:"export" help:"Export alarms as an iCalendar file"`
	Import    ImportCmd    `cmd:"import" help:"Import alarms from an iCalendar file"`
	Sync      SyncCmd      `cmd:"sync" help:"Push or pull alarms to the remote backend"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the TUI over SSH and ring alarms on this machine"`
	Autostart AutostartCmd `cmd:"autostart" help:"Start the alarm daemon with your session"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	container     *Container       `kong:"-"`
	containerErr  error            `kong:"-"`
	containerOnce sync.Once        `kong:"-"`
	settings      *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Apply MaxLogFiles setting
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("DESPERTAR_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	// Apply Debug setting
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("DESPERTAR_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Processes started by autostart or the SSH server inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DESPERTAR_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("DESPERTAR_DEBUG_FILE", logFilePath)
		}
	}

	if err := c.settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings.json: %w", err)
	}

	return nil
}

// Container returns the dependency container, creating it on first use.
// Logging is initialized by then so GORM's logger has somewhere to write.
func (c *CLI) Container(ctx context.Context) (*Container, error) {
	c.containerOnce.Do(func() {
		c.container, c.containerErr = NewContainer(ctx, c.settings)
		if c.containerErr != nil {
			c.containerErr = fmt.Errorf("failed to initialize container: %w", c.containerErr)
		}
	})
	return c.container, c.containerErr
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.container != nil {
		return c.container.Close()
	}
	return nil
}
