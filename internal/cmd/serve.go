package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/server"
	"github.com/renato0307/despertar/internal/ui"
)

// ServeCmd serves the TUI over SSH. This process owns the scheduler, so
// alarms ring on the machine running the server.
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (default: ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
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

	scheduling, err := acquireScheduler(container)
	if err != nil {
		return err
	}
	if !scheduling {
		return fmt.Errorf("cannot start server: %w", domain.ErrSchedulerLocked)
	}

	errorClearDelay := config.DefaultErrorClearDelay
	if cli.settings.ErrorClearDelay != nil {
		errorClearDelay = *cli.settings.ErrorClearDelay
	}

	srv, err := server.NewServer(
		server.Config{
			AuthorizedKeysPath: s.AuthorizedKeys,
			HostKeyPath:        filepath.Join(config.GetSSHDir(), "id_ed25519"),
			Host:               s.Host,
			Port:               s.Port,
		},
		container.Alarms,
		container.Player,
		ui.ModelOptions{
			DefaultSound:    cli.settings.DefaultSound,
			ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
			Keys:            keysConfig,
		},
	)
	if err != nil {
		return err
	}
	container.Notifier.Attach(srv)

	if _, err := container.ConnectMQTT(); err != nil {
		logging.Logger.Warn("MQTT unavailable", "error", err)
	}
	if container.RemoteErr != nil {
		container.Notifier.Notify(ctx, domain.ErrorNotice("failed to load your alarms"))
	}
	if err := container.Alarms.Load(ctx); err != nil {
		return err
	}

	fmt.Printf("SSH server listening on %s\n", srv.Addr())
	return runAll(ctx, container, true, srv.Serve)
}
