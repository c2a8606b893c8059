package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	adapterlock "github.com/renato0307/despertar/internal/adapters/lock"
	adapternotify "github.com/renato0307/despertar/internal/adapters/notify"
	adapterremote "github.com/renato0307/despertar/internal/adapters/remote"
	adaptersound "github.com/renato0307/despertar/internal/adapters/sound"
	adapterstorage "github.com/renato0307/despertar/internal/adapters/storage"
	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
	"github.com/renato0307/despertar/internal/services"
)

// remoteConnectTimeout bounds how long startup waits for the remote backend
const remoteConnectTimeout = 10 * time.Second

// Container holds all dependencies for the application
type Container struct {
	// Services
	Alarms    *services.AlarmService
	Mirror    *services.MirrorService
	Player    *services.SoundPlayer
	Scheduler *services.Scheduler

	// Adapters
	Lock     ports.InstanceLock
	Notifier *adapternotify.Relay // Commands attach their own outputs
	Settings *config.Settings

	// RemoteErr is set when a remote backend is configured but could not be opened.
	// The mirror is disabled in that case.
	RemoteErr error

	// Internal - for cleanup only
	mqtt   *adapternotify.MQTTNotifier
	remote adapterremote.Mirror
	repo   ports.AlarmRepository
}

// NewContainer creates a new Container with all dependencies wired.
// Alarms are not loaded yet; commands call Alarms.Load once their notifiers are attached.
func NewContainer(ctx context.Context, settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	c := &Container{
		Lock:     adapterlock.NewFileLock(config.GetLockPath()),
		Notifier: adapternotify.NewRelay(),
		Settings: settings,
		repo:     repo,
	}

	userID := settings.ResolveUserID()
	var mirror ports.AlarmMirror
	if userID != "" && settings.Remote != nil && settings.Remote.Backend != config.RemoteBackendNone {
		connectCtx, cancel := context.WithTimeout(ctx, remoteConnectTimeout)
		remote, err := adapterremote.Open(connectCtx, settings.Remote)
		cancel()
		if err != nil {
			logging.Logger.Error("Failed to open remote backend", "backend", settings.Remote.Backend, "error", err)
			c.RemoteErr = fmt.Errorf("failed to open %s backend: %w", settings.Remote.Backend, err)
		} else if remote != nil {
			c.remote = remote
			mirror = remote
			logging.Logger.Info("Remote backend ready", "backend", settings.Remote.Backend, "user_id", userID)
		}
	}

	c.Mirror = services.NewMirrorService(mirror, userID, c.Notifier)
	c.Alarms = services.NewAlarmService(repo, c.Mirror, c.Notifier)
	c.Player = newSoundPlayer(settings)
	c.Scheduler = services.NewScheduler(c.Alarms, c.Player, c.Notifier)

	return c, nil
}

// newSoundPlayer picks the file backend from settings and falls back to a
// synthesized tone, then to the terminal bell
func newSoundPlayer(settings *config.Settings) *services.SoundPlayer {
	soundsDir := settings.SoundsDir()

	var primary ports.AudioBackend
	switch settings.AudioBackend() {
	case config.AudioBackendCommand:
		primary = adaptersound.NewCommandBackend(soundsDir)
	default:
		primary = adaptersound.NewOtoBackend(soundsDir)
	}

	logging.Logger.Debug("Audio configured", "backend", settings.AudioBackend(), "sounds_dir", soundsDir)
	return services.NewSoundPlayer(primary, adaptersound.NewToneBackend(), adaptersound.NewBell(os.Stdout))
}

// ConnectMQTT connects the MQTT notifier when a broker is configured and
// attaches it to the relay. Remote stop requests silence the player.
// Returns false when MQTT is not configured.
func (c *Container) ConnectMQTT() (bool, error) {
	cfg := c.Settings.MQTT
	if cfg == nil || cfg.Broker == "" {
		return false, nil
	}
	if c.mqtt != nil {
		return true, nil
	}

	notifier, err := adapternotify.ConnectMQTT(cfg)
	if err != nil {
		return false, err
	}
	if err := notifier.OnStop(c.Player.Stop); err != nil {
		notifier.Close()
		return false, err
	}

	c.mqtt = notifier
	c.Notifier.Attach(notifier)
	return true, nil
}

// AcquireScheduler takes the single-scheduler lock.
// Returns domain.ErrSchedulerLocked when another process rings the alarms.
func (c *Container) AcquireScheduler() error {
	return c.Lock.TryLock()
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.Player.Close()

	if c.mqtt != nil {
		c.mqtt.Close()
	}

	var errs []error
	if err := c.Lock.Unlock(); err != nil {
		errs = append(errs, err)
	}
	if c.remote != nil {
		if err := c.remote.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.repo != nil {
		if err := c.repo.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
