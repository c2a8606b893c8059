package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
	portsmocks "github.com/renato0307/despertar/internal/ports/mocks"
)

func TestCreate_ComputesNextTriggerFromNow(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))

	alarm, err := svc.Create(context.Background(), domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})

	require.NoError(t, err)
	assert.Equal(t, "alarm-1", alarm.ID)
	assert.True(t, alarm.Enabled)
	assert.Equal(t, at(2024, 1, 2, 8, 0), alarm.NextTrigger)
	assert.Equal(t, domain.DefaultSoundID, alarm.SoundID)
}

func TestCreate_UpcomingWeekday(t *testing.T) {
	// 2024-01-01 is a Monday
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 10, 0))

	alarm, err := svc.Create(context.Background(), domain.AlarmDraft{
		Days: []domain.Weekday{domain.Wednesday},
		Time: domain.TimeOfDay{Hour: 7},
	})

	require.NoError(t, err)
	assert.Equal(t, at(2024, 1, 3, 7, 0), alarm.NextTrigger)
}

func TestCreate_InvalidDraftLeavesStoreUnchanged(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	svc := NewAlarmService(repo, nil, nil)

	_, err := svc.Create(context.Background(), domain.AlarmDraft{
		Days: []domain.Weekday{domain.Monday, domain.Monday},
		Time: domain.TimeOfDay{Hour: 8},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAlarm)
	assert.Empty(t, svc.List())
}

func TestCreate_KeepsInsertionOrder(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))
	ctx := context.Background()

	for _, h := range []int{22, 6, 13} {
		_, err := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: h}})
		require.NoError(t, err)
	}

	alarms := svc.List()
	require.Len(t, alarms, 3)
	assert.Equal(t, 22, alarms[0].Time.Hour)
	assert.Equal(t, 6, alarms[1].Time.Hour)
	assert.Equal(t, 13, alarms[2].Time.Hour)
}

func TestToggle_TwiceRestoresOriginal(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))
	ctx := context.Background()
	created, err := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})
	require.NoError(t, err)

	first, ok := svc.Toggle(ctx, created.ID)
	require.True(t, ok)
	assert.False(t, first.Enabled)

	second, ok := svc.Toggle(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, second)
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	svc, repo := newTestAlarmService(t, at(2024, 1, 1, 9, 0))

	_, ok := svc.Toggle(context.Background(), "ghost")

	assert.False(t, ok)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestToggle_KeepsStaleTrigger(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))
	ctx := context.Background()
	created, err := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 10}})
	require.NoError(t, err)

	svc.Toggle(ctx, created.ID)
	svc.now = func() time.Time { return at(2024, 1, 5, 0, 0) }
	enabled, _ := svc.Toggle(ctx, created.ID)

	assert.Equal(t, created.NextTrigger, enabled.NextTrigger, "re-enabling does not reschedule")
}

func TestDelete(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))
	ctx := context.Background()
	a, _ := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 7}})
	b, _ := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})

	assert.True(t, svc.Delete(ctx, a.ID))
	assert.False(t, svc.Delete(ctx, a.ID), "second delete is a no-op")
	assert.False(t, svc.Delete(ctx, "ghost"))

	alarms := svc.List()
	require.Len(t, alarms, 1)
	assert.Equal(t, b.ID, alarms[0].ID)
}

func TestReschedule(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 6, 0))
	ctx := context.Background()
	created, _ := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})
	require.Equal(t, at(2024, 1, 1, 8, 0), created.NextTrigger)

	rescheduled, ok := svc.Reschedule(ctx, created.ID, created.NextTrigger)

	require.True(t, ok)
	assert.Equal(t, at(2024, 1, 2, 8, 0), rescheduled.NextTrigger)
	assert.True(t, rescheduled.Enabled)

	_, ok = svc.Reschedule(ctx, "ghost", created.NextTrigger)
	assert.False(t, ok)
}

func TestEdit(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))
	ctx := context.Background()
	created, _ := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}, Label: "old"})
	svc.Toggle(ctx, created.ID)

	edited, err := svc.Edit(ctx, created.ID, domain.AlarmDraft{
		Days:    []domain.Weekday{domain.Friday},
		Label:   "new",
		SoundID: "marimba",
		Time:    domain.TimeOfDay{Hour: 6, Minute: 45},
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, "new", edited.Label)
	assert.Equal(t, "marimba", edited.SoundID)
	assert.False(t, edited.Enabled, "edit keeps the enabled flag")
	assert.Equal(t, at(2024, 1, 5, 6, 45), edited.NextTrigger)
}

func TestEdit_Errors(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))

	_, err := svc.Edit(context.Background(), "ghost", domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})
	assert.ErrorIs(t, err, domain.ErrAlarmNotFound)

	_, err = svc.Edit(context.Background(), "ghost", domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 30}})
	assert.ErrorIs(t, err, domain.ErrInvalidAlarm)
}

func TestList_ReturnsCopies(t *testing.T) {
	svc, _ := newTestAlarmService(t, at(2024, 1, 1, 9, 0))
	created, _ := svc.Create(context.Background(), domain.AlarmDraft{
		Days: []domain.Weekday{domain.Monday},
		Time: domain.TimeOfDay{Hour: 8},
	})

	snapshot := svc.Snapshot()
	snapshot[0].Days[0] = domain.Sunday
	snapshot[0].Enabled = false

	got, ok := svc.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, domain.Monday, got.Days[0])
	assert.True(t, got.Enabled)
}

func TestPersistenceFailureKeepsMutationAndNotifies(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notice) bool {
		return n.Level == domain.NoticeError
	})).Return()

	svc := NewAlarmService(repo, nil, notifier)

	alarm, err := svc.Create(context.Background(), domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})

	require.NoError(t, err)
	assert.Len(t, svc.List(), 1)
	assert.NotEmpty(t, alarm.ID)
}

func TestMutationsPushSnapshotsToMirror(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	remote := portsmocks.NewMockAlarmMirror(t)

	mirror := NewMirrorService(remote, "user-1", nil)
	svc := NewAlarmService(repo, mirror, nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx, domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}})
	svc.Toggle(ctx, a.ID)

	remote.EXPECT().Save(mock.Anything, "user-1", mock.MatchedBy(func(alarms []domain.Alarm) bool {
		return len(alarms) == 1 && !alarms[0].Enabled
	})).Return(nil).Once()

	require.NoError(t, mirror.Flush(ctx))
}

func TestLoad_RemoteReplacesLocal(t *testing.T) {
	ctx := context.Background()
	local := []domain.Alarm{{ID: "local", Time: domain.TimeOfDay{Hour: 7}}}
	fromRemote := []domain.Alarm{{ID: "remote", Time: domain.TimeOfDay{Hour: 9}}}

	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().List(mock.Anything).Return(local, nil)
	repo.EXPECT().ReplaceAll(mock.Anything, fromRemote).Return(nil)
	remote := portsmocks.NewMockAlarmMirror(t)
	remote.EXPECT().Load(mock.Anything, "user-1").Return(fromRemote, nil)

	svc := NewAlarmService(repo, NewMirrorService(remote, "user-1", nil), nil)

	require.NoError(t, svc.Load(ctx))
	alarms := svc.List()
	require.Len(t, alarms, 1)
	assert.Equal(t, "remote", alarms[0].ID)
}

func TestLoad_NoRemoteRecordIsSilent(t *testing.T) {
	local := []domain.Alarm{{ID: "local", Time: domain.TimeOfDay{Hour: 7}}}

	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().List(mock.Anything).Return(local, nil)
	remote := portsmocks.NewMockAlarmMirror(t)
	remote.EXPECT().Load(mock.Anything, "user-1").Return(nil, domain.ErrRecordNotFound)
	notifier := portsmocks.NewMockNotifier(t)

	svc := NewAlarmService(repo, NewMirrorService(remote, "user-1", notifier), notifier)

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, "local", svc.List()[0].ID)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestLoad_RemoteFailureIsSurfaced(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil)
	remote := portsmocks.NewMockAlarmMirror(t)
	remote.EXPECT().Load(mock.Anything, "user-1").Return(nil, errors.New("timeout"))
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, domain.ErrorNotice("failed to load your alarms")).Return().Once()

	svc := NewAlarmService(repo, NewMirrorService(remote, "user-1", notifier), notifier)

	assert.NoError(t, svc.Load(context.Background()))
}

func TestLoad_LocalFailure(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("corrupt"))

	svc := NewAlarmService(repo, nil, nil)

	assert.ErrorContains(t, svc.Load(context.Background()), "corrupt")
}

func TestRefresh_KeepsUnsavedAlarmUntilRetrySucceeds(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockAlarmRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return().Maybe()
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Twice()
	repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	svc := NewAlarmService(repo, nil, notifier)
	created, err := svc.Create(ctx, domain.AlarmDraft{Label: "Gym", Time: domain.TimeOfDay{Hour: 8}})
	require.NoError(t, err)

	require.NoError(t, svc.Refresh(ctx))
	got, ok := svc.Get(created.ID)
	require.True(t, ok, "created alarm survives a refresh while its write fails")
	assert.Equal(t, "Gym", got.Label)

	repo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(a domain.Alarm) bool {
		return a.ID == created.ID
	})).Return(nil).Once()
	repo.EXPECT().List(mock.Anything).Return([]domain.Alarm{created}, nil).Once()

	require.NoError(t, svc.Refresh(ctx))
	assert.Len(t, svc.List(), 1)

	// Saved now, so the stored copy wins from here on
	edited := created
	edited.Label = "Run"
	repo.EXPECT().List(mock.Anything).Return([]domain.Alarm{edited}, nil).Once()

	require.NoError(t, svc.Refresh(ctx))
	got, _ = svc.Get(created.ID)
	assert.Equal(t, "Run", got.Label)
}

func TestRefresh_HidesAlarmWhoseDeleteFailed(t *testing.T) {
	ctx := context.Background()
	alarm := domain.Alarm{ID: "a", Time: domain.TimeOfDay{Hour: 7}}

	repo := portsmocks.NewMockAlarmRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return().Maybe()
	repo.EXPECT().List(mock.Anything).Return([]domain.Alarm{alarm}, nil)
	repo.EXPECT().Delete(mock.Anything, "a").Return(errors.New("database is locked")).Twice()

	svc := NewAlarmService(repo, nil, notifier)
	require.NoError(t, svc.Refresh(ctx))
	require.True(t, svc.Delete(ctx, "a"))

	require.NoError(t, svc.Refresh(ctx))
	assert.Empty(t, svc.List())
}
