package services

import (
	"context"
	"time"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// TickPeriod is how often the scheduler looks for due alarms
const TickPeriod = 1 * time.Second

// Scheduler fires due alarms and advances them to their next occurrence
type Scheduler struct {
	alarms       *AlarmService
	notifier     ports.Notifier
	now          func() time.Time
	player       *SoundPlayer
	refreshEvery time.Duration
}

// NewScheduler creates a new Scheduler
func NewScheduler(alarms *AlarmService, player *SoundPlayer, notifier ports.Notifier) *Scheduler {
	return &Scheduler{
		alarms:   alarms,
		notifier: notifier,
		now:      time.Now,
		player:   player,
	}
}

// SetRefreshInterval makes Run re-read the local repository every d, picking up
// alarms changed by other processes. Zero disables it.
func (s *Scheduler) SetRefreshInterval(d time.Duration) {
	s.refreshEvery = d
}

// Tick fires every enabled alarm due at now. Returns the fired events in
// collection order; the last one fired holds the audio slot.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) []domain.FireEvent {
	var fired []domain.FireEvent

	for _, cached := range s.alarms.Snapshot() {
		if !cached.IsDue(now) {
			continue
		}

		alarm, ok := s.alarms.Confirm(ctx, cached.ID)
		if !ok || !alarm.IsDue(now) {
			logging.Logger.Debug("Alarm changed since last refresh, not firing", "id", cached.ID)
			continue
		}

		logging.Logger.Info("Alarm due", "id", alarm.ID, "trigger", alarm.NextTrigger, "now", now)

		if err := s.player.Start(alarm.SoundID); err != nil {
			logging.Logger.Error("Failed to play alarm sound", "id", alarm.ID, "error", err)
		}

		event := domain.FireEvent{Alarm: alarm, FiredAt: now}
		if s.notifier != nil {
			s.notifier.AlarmFired(ctx, event)
		}

		if _, ok := s.alarms.Reschedule(ctx, alarm.ID, now); !ok {
			logging.Logger.Debug("Fired alarm was deleted before reschedule", "id", alarm.ID)
		}

		fired = append(fired, event)
	}

	return fired
}

// Run ticks every TickPeriod until ctx is done. The active tone is stopped on exit.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(TickPeriod)
	defer ticker.Stop()
	defer s.player.Stop()

	logging.Logger.Info("Scheduler started", "period", TickPeriod)
	lastRefresh := s.now()

	// Alarms already due at startup fire immediately
	s.Tick(ctx, s.now())

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Info("Scheduler stopped")
			return nil
		case <-ticker.C:
			now := s.now()
			if s.refreshEvery > 0 && now.Sub(lastRefresh) >= s.refreshEvery {
				if err := s.alarms.Refresh(ctx); err != nil {
					logging.Logger.Warn("Failed to refresh alarms", "error", err)
				}
				lastRefresh = now
			}
			s.Tick(ctx, now)
		}
	}
}
