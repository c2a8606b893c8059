package cmd

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
	"github.com/renato0307/despertar/internal/services"
)

func TestRefreshLoop_RereadsUntilCancelled(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	refreshed := make(chan struct{}, 8)
	repo.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Alarm, error) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
		return []domain.Alarm{{ID: "from-disk"}}, nil
	})

	alarms := services.NewAlarmService(repo, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- refreshLoop(ctx, alarms, 10*time.Millisecond) }()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh loop never read the repository")
	}
	cancel()

	require.NoError(t, <-done)
	_, ok := alarms.Get("from-disk")
	assert.True(t, ok)
}

func TestRefreshLoop_KeepsGoingOnError(t *testing.T) {
	repo := portsmocks.NewMockAlarmRepository(t)
	calls := make(chan struct{}, 8)
	repo.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Alarm, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil, errors.New("disk gone")
	})

	alarms := services.NewAlarmService(repo, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refreshLoop(ctx, alarms, 5*time.Millisecond)

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("refresh loop stopped after an error")
		}
	}
}

func TestSleepContext_ReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.NoError(t, sleepContext(ctx, time.Hour))
	assert.Less(t, time.Since(start), time.Second)
}
