package cmd

import (
	"context"
	"fmt"
	"os"

	adapternotify "github.com/renato0307/despertar/internal/adapters/notify"
	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

// DaemonCmd rings alarms without a UI. Fire events are printed and, when a
// broker is configured, published over MQTT.
type DaemonCmd struct {
	Quiet bool `help:"Do not print fire events to stdout"`
}

// Run executes the daemon
func (d *DaemonCmd) Run(cli *CLI) error {
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
		return fmt.Errorf("cannot start daemon: %w", domain.ErrSchedulerLocked)
	}

	out := os.Stdout
	if d.Quiet {
		out = nil
	}
	if out != nil {
		container.Notifier.Attach(adapternotify.NewLogNotifier(out))
	}

	connected, err := container.ConnectMQTT()
	if err != nil {
		logging.Logger.Warn("MQTT unavailable", "error", err)
	}

	if container.RemoteErr != nil {
		container.Notifier.Notify(ctx, domain.ErrorNotice("failed to load your alarms"))
	}
	if err := container.Alarms.Load(ctx); err != nil {
		return err
	}

	logging.Logger.Info("Daemon started", "alarms", len(container.Alarms.List()), "mqtt", connected)
	if !d.Quiet {
		fmt.Printf("despertar daemon running with %d alarm(s). Press Ctrl+C to stop.\n", len(container.Alarms.List()))
	}

	return runAll(ctx, container, true, func(ctx context.Context) error {
		<-ctx.Done()
		logging.Logger.Info("Daemon stopping")
		return nil
	})
}
