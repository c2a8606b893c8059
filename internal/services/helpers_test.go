package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/renato0307/despertar/internal/domain"
	portsmocks "github.com/renato0307/despertar/internal/ports/mocks"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// newTestAlarmService returns a service over a permissive map-backed
// repository mock with a fixed clock and predictable ids
func newTestAlarmService(t *testing.T, now time.Time) (*AlarmService, *portsmocks.MockAlarmRepository) {
	t.Helper()

	stored := make(map[string]domain.Alarm)
	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, alarm domain.Alarm) error {
		stored[alarm.ID] = alarm.Clone()
		return nil
	}).Maybe()
	repo.EXPECT().Delete(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id string) error {
		delete(stored, id)
		return nil
	}).Maybe()
	repo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id string) (*domain.Alarm, error) {
		alarm, ok := stored[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, id)
		}
		alarm = alarm.Clone()
		return &alarm, nil
	}).Maybe()

	svc := NewAlarmService(repo, nil, nil)
	svc.now = func() time.Time { return now }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("alarm-%d", seq)
	}
	return svc, repo
}
