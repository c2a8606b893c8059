package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// AlarmService is the ordered in-memory alarm collection. Every mutation is
// written through to the local repository and pushed to the remote mirror.
// Writes the repository rejected are remembered and retried on Refresh; until
// they succeed the in-memory version wins over the stored one.
type AlarmService struct {
	alarms    []domain.Alarm
	mirror    *MirrorService
	mu        sync.RWMutex
	newID     func() string
	notifier  ports.Notifier
	now       func() time.Time
	repo      ports.AlarmRepository
	undeleted map[string]bool
	unsaved   map[string]bool
}

// NewAlarmService creates a new AlarmService. mirror and notifier may be nil.
func NewAlarmService(
	repo ports.AlarmRepository,
	mirror *MirrorService,
	notifier ports.Notifier,
) *AlarmService {
	return &AlarmService{
		mirror:    mirror,
		newID:     uuid.NewString,
		notifier:  notifier,
		now:       time.Now,
		repo:      repo,
		undeleted: make(map[string]bool),
		unsaved:   make(map[string]bool),
	}
}

// Load fills the collection from the local repository, then lets the remote
// record (when one exists) replace it
func (s *AlarmService) Load(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	remote, found, err := s.mirror.Pull(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load remote alarms", "error", err)
		s.notify(ctx, domain.ErrorNotice("failed to load your alarms"))
		return nil
	}
	if !found {
		logging.Logger.Debug("No remote alarms for user yet")
		return nil
	}

	logging.Logger.Info("Loaded alarms from remote", "count", len(remote))
	return s.replace(ctx, remote, false)
}

// Refresh re-reads the local repository so changes made by other processes
// become visible. Pending writes are retried first; alarms whose write still
// fails keep their in-memory version.
func (s *AlarmService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.retryPending(ctx)

	stored, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load alarms: %w", err)
	}
	s.alarms = s.mergePending(stored)
	return nil
}

// Confirm re-reads one alarm from the local repository so a change made by
// another process since the last refresh is honored. Reports false when the
// alarm no longer exists.
func (s *AlarmService) Confirm(ctx context.Context, id string) (domain.Alarm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Alarm{}, false
	}
	if s.unsaved[id] {
		return s.alarms[i].Clone(), true
	}

	stored, err := s.repo.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrAlarmNotFound):
		logging.Logger.Info("Alarm was removed by another process", "id", id)
		s.alarms = append(s.alarms[:i:i], s.alarms[i+1:]...)
		return domain.Alarm{}, false
	case err != nil:
		logging.Logger.Warn("Failed to re-read alarm, using cached copy", "id", id, "error", err)
		return s.alarms[i].Clone(), true
	}

	s.alarms[i] = stored.Clone()
	return stored.Clone(), true
}

// Replace swaps the whole collection, persisting it locally and to the mirror
func (s *AlarmService) Replace(ctx context.Context, alarms []domain.Alarm) error {
	return s.replace(ctx, alarms, true)
}

func (s *AlarmService) replace(ctx context.Context, alarms []domain.Alarm, push bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := cloneAlarms(alarms)
	if err := s.repo.ReplaceAll(ctx, copied); err != nil {
		return fmt.Errorf("failed to save alarms: %w", err)
	}
	s.alarms = copied
	clear(s.undeleted)
	clear(s.unsaved)

	if push {
		s.mirror.Push(cloneAlarms(s.alarms))
	}
	return nil
}

// Create validates the draft and appends a new enabled alarm
func (s *AlarmService) Create(ctx context.Context, draft domain.AlarmDraft) (domain.Alarm, error) {
	if err := draft.Validate(); err != nil {
		return domain.Alarm{}, err
	}

	alarm := domain.Alarm{ID: s.newID(), Enabled: true}
	alarm.Apply(draft, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.alarms = append(s.alarms, alarm)
	s.commit(ctx, &alarm, "")

	logging.Logger.Info("Alarm created", "id", alarm.ID, "time", alarm.Time.String(), "next", alarm.NextTrigger)
	return alarm.Clone(), nil
}

// Toggle flips Enabled. An unknown id is a no-op and reports false.
func (s *AlarmService) Toggle(ctx context.Context, id string) (domain.Alarm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		logging.Logger.Debug("Toggle ignored, alarm not found", "id", id)
		return domain.Alarm{}, false
	}

	s.alarms[i].Enabled = !s.alarms[i].Enabled
	alarm := s.alarms[i].Clone()
	s.commit(ctx, &alarm, "")
	return alarm, true
}

// Delete removes the alarm. Deleting an unknown id is a no-op and reports false.
func (s *AlarmService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.alarms = append(s.alarms[:i:i], s.alarms[i+1:]...)
	s.commit(ctx, nil, id)

	logging.Logger.Info("Alarm deleted", "id", id)
	return true
}

// Reschedule recomputes NextTrigger from the alarm's own fields and from
func (s *AlarmService) Reschedule(ctx context.Context, id string, from time.Time) (domain.Alarm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Alarm{}, false
	}

	a := &s.alarms[i]
	a.NextTrigger = domain.NextTrigger(a.Time, a.Days, from)
	alarm := a.Clone()
	s.commit(ctx, &alarm, "")

	logging.Logger.Debug("Alarm rescheduled", "id", id, "next", alarm.NextTrigger)
	return alarm, true
}

// Edit replaces the user-editable fields and recomputes NextTrigger from now
func (s *AlarmService) Edit(ctx context.Context, id string, draft domain.AlarmDraft) (domain.Alarm, error) {
	if err := draft.Validate(); err != nil {
		return domain.Alarm{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Alarm{}, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, id)
	}

	s.alarms[i].Apply(draft, s.now())
	alarm := s.alarms[i].Clone()
	s.commit(ctx, &alarm, "")
	return alarm, nil
}

// Get returns a copy of the alarm with the given id
func (s *AlarmService) Get(id string) (domain.Alarm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Alarm{}, false
	}
	return s.alarms[i].Clone(), true
}

// List returns a deep copy of the collection in display order
func (s *AlarmService) List() []domain.Alarm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAlarms(s.alarms)
}

// Snapshot is List under the name the scheduler uses: a tick never observes
// a mutation half-way through
func (s *AlarmService) Snapshot() []domain.Alarm {
	return s.List()
}

// commit persists one change. Must be called with s.mu held.
// The in-memory mutation is never rolled back.
func (s *AlarmService) commit(ctx context.Context, changed *domain.Alarm, deletedID string) {
	var err error
	if changed != nil {
		err = s.repo.Upsert(ctx, *changed)
		markPending(s.unsaved, changed.ID, err)
	} else {
		err = s.repo.Delete(ctx, deletedID)
		delete(s.unsaved, deletedID)
		markPending(s.undeleted, deletedID, err)
	}
	if err != nil {
		logging.Logger.Error("Failed to persist alarm locally", "error", err)
		s.notify(ctx, domain.ErrorNotice("failed to save alarm: "+err.Error()))
	}

	s.mirror.Push(cloneAlarms(s.alarms))
}

// retryPending replays writes the repository rejected earlier. Must be called with s.mu held.
func (s *AlarmService) retryPending(ctx context.Context) {
	for id := range s.undeleted {
		if err := s.repo.Delete(ctx, id); err != nil {
			logging.Logger.Warn("Retrying alarm delete failed", "id", id, "error", err)
			continue
		}
		delete(s.undeleted, id)
	}

	for id := range s.unsaved {
		i := s.indexOf(id)
		if i < 0 {
			delete(s.unsaved, id)
			continue
		}
		if err := s.repo.Upsert(ctx, s.alarms[i]); err != nil {
			logging.Logger.Warn("Retrying alarm save failed", "id", id, "error", err)
			continue
		}
		delete(s.unsaved, id)
	}
}

// mergePending overlays unsaved alarms on the stored list and hides alarms
// whose delete has not reached the repository. Must be called with s.mu held.
func (s *AlarmService) mergePending(stored []domain.Alarm) []domain.Alarm {
	merged := make([]domain.Alarm, 0, len(stored)+len(s.unsaved))
	seen := make(map[string]bool, len(stored))

	for _, alarm := range stored {
		if s.undeleted[alarm.ID] {
			continue
		}
		seen[alarm.ID] = true
		if i := s.indexOf(alarm.ID); i >= 0 && s.unsaved[alarm.ID] {
			alarm = s.alarms[i]
		}
		merged = append(merged, alarm)
	}

	// Alarms that never reached the repository keep their relative order at the end
	for _, alarm := range s.alarms {
		if s.unsaved[alarm.ID] && !seen[alarm.ID] {
			merged = append(merged, alarm)
		}
	}
	return merged
}

func markPending(pending map[string]bool, id string, err error) {
	if err != nil {
		pending[id] = true
		return
	}
	delete(pending, id)
}

func (s *AlarmService) notify(ctx context.Context, notice domain.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, notice)
	}
}

func (s *AlarmService) indexOf(id string) int {
	for i := range s.alarms {
		if s.alarms[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAlarms(alarms []domain.Alarm) []domain.Alarm {
	out := make([]domain.Alarm, len(alarms))
	for i, a := range alarms {
		out[i] = a.Clone()
	}
	return out
}
