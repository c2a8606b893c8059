package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/services"
)

// refreshInterval is how often long-running processes re-read the local
// repository to pick up changes made by other despertar processes
const refreshInterval = 5 * time.Second

// signalContext is cancelled on interrupt or termination
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// acquireScheduler takes the single-scheduler lock. Returns false, without an
// error, when another process already rings the alarms.
func acquireScheduler(c *Container) (bool, error) {
	err := c.AcquireScheduler()
	if errors.Is(err, domain.ErrSchedulerLocked) {
		logging.Logger.Info("Another process owns the scheduler")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	logging.Logger.Info("Scheduler lock acquired")
	return true, nil
}

// runAll runs the mirror worker and either the scheduler (when this process
// owns it) or a refresh loop next to main. Everything stops when main returns
// or ctx is done.
func runAll(ctx context.Context, c *Container, scheduling bool, main func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Mirror.Run(gctx)
	})

	if scheduling {
		c.Scheduler.SetRefreshInterval(refreshInterval)
		g.Go(func() error {
			return c.Scheduler.Run(gctx)
		})
	} else {
		g.Go(func() error {
			return refreshLoop(gctx, c.Alarms, refreshInterval)
		})
	}

	g.Go(func() error {
		defer cancel()
		return main(gctx)
	})

	return g.Wait()
}

// refreshLoop re-reads the local repository every interval until ctx is done
func refreshLoop(ctx context.Context, alarms *services.AlarmService, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := alarms.Refresh(ctx); err != nil {
				logging.Logger.Warn("Failed to refresh alarms", "error", err)
			}
		}
	}
}
