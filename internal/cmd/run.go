package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before notices auto-clear" default:"10" env:"DESPERTAR_ERROR_CLEAR_DELAY"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply ErrorClearDelay setting when neither flag nor env var changed it
	if r.ErrorClearDelay == config.DefaultErrorClearDelay {
		if _, hasEnv := os.LookupEnv("DESPERTAR_ERROR_CLEAR_DELAY"); !hasEnv {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
	}

	keysConfig, err := validatedKeys(cli.settings)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting despertar TUI")

	notifier := ui.NewProgramNotifier()
	defer notifier.Close()
	container.Notifier.Attach(notifier)

	if _, err := container.ConnectMQTT(); err != nil {
		logging.Logger.Warn("MQTT unavailable", "error", err)
	}

	if err := container.Alarms.Load(ctx); err != nil {
		return err
	}

	scheduling, err := acquireScheduler(container)
	if err != nil {
		return err
	}

	model := ui.NewModel(container.Alarms, container.Player, ui.ModelOptions{
		DefaultSound:    cli.settings.DefaultSound,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keysConfig,
	})

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
		tea.WithContext(ctx),
	)
	notifier.Attach(p)

	if container.RemoteErr != nil {
		notifier.Notify(ctx, domain.ErrorNotice("failed to load your alarms"))
	}
	if !scheduling {
		notifier.Notify(ctx, domain.InfoNotice("Alarms ring in another despertar process"))
	}

	return runAll(ctx, container, scheduling, func(ctx context.Context) error {
		logging.Logger.Info("Starting TUI program")
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			logging.Logger.Error("TUI program error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		logging.Logger.Info("TUI program exited normally")
		return nil
	})
}

// validatedKeys returns the custom key bindings from settings after checking them
func validatedKeys(settings *config.Settings) (config.KeyBindingsConfig, error) {
	if settings == nil || settings.Keys == nil {
		return nil, nil
	}
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return settings.Keys, nil
}
