package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// shutdownFlushTimeout bounds the last save attempted when Run exits
const shutdownFlushTimeout = 5 * time.Second

// MirrorService keeps a best-effort copy of the alarm list in the remote
// per-user record. Only the latest snapshot is ever saved.
type MirrorService struct {
	mirror   ports.AlarmMirror
	mu       sync.Mutex
	notifier ports.Notifier
	pending  []domain.Alarm
	queued   bool
	saveMu   sync.Mutex
	userID   string
	wake     chan struct{}
}

// NewMirrorService creates a mirror for userID. A nil mirror or empty userID disables it.
func NewMirrorService(mirror ports.AlarmMirror, userID string, notifier ports.Notifier) *MirrorService {
	return &MirrorService{
		mirror:   mirror,
		notifier: notifier,
		userID:   userID,
		wake:     make(chan struct{}, 1),
	}
}

// Enabled reports whether a backend and an identity are configured
func (m *MirrorService) Enabled() bool {
	return m != nil && m.mirror != nil && m.userID != ""
}

// Push queues alarms for saving without blocking. A newer push replaces a queued one.
func (m *MirrorService) Push(alarms []domain.Alarm) {
	if !m.Enabled() {
		return
	}

	m.mu.Lock()
	m.pending = alarms
	m.queued = true
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Run saves queued snapshots until ctx is done, then flushes what is left
func (m *MirrorService) Run(ctx context.Context) error {
	if !m.Enabled() {
		<-ctx.Done()
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
			defer cancel()
			if err := m.Flush(flushCtx); err != nil {
				logging.Logger.Warn("Final mirror flush failed", "error", err)
			}
			return nil
		case <-m.wake:
			_ = m.Flush(ctx)
		}
	}
}

// Flush saves the queued snapshot, if any, synchronously
func (m *MirrorService) Flush(ctx context.Context) error {
	if !m.Enabled() {
		return nil
	}

	// Taking the snapshot under saveMu keeps saves in push order
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.Lock()
	alarms, queued := m.pending, m.queued
	m.pending, m.queued = nil, false
	m.mu.Unlock()

	if !queued {
		return nil
	}

	if err := m.mirror.Save(ctx, m.userID, alarms); err != nil {
		if ctx.Err() != nil {
			// Interrupted, usually by shutdown: the final flush sends it
			m.requeue(alarms)
			logging.Logger.Warn("Remote save interrupted, snapshot kept", "error", err)
			return err
		}
		logging.Logger.Error("Failed to save alarms to remote", "error", err)
		if m.notifier != nil {
			m.notifier.Notify(ctx, domain.ErrorNotice("failed to save your alarms"))
		}
		return err
	}

	logging.Logger.Debug("Saved alarms to remote", "count", len(alarms))
	return nil
}

// requeue puts back a snapshot whose save did not complete, unless a newer one is queued
func (m *MirrorService) requeue(alarms []domain.Alarm) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.queued {
		m.pending, m.queued = alarms, true
	}
}

// Pull loads the remote record. found is false when the user has no record yet.
func (m *MirrorService) Pull(ctx context.Context) ([]domain.Alarm, bool, error) {
	if !m.Enabled() {
		return nil, false, nil
	}

	alarms, err := m.mirror.Load(ctx, m.userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return alarms, true, nil
}
