package server

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
	portsmocks "github.com/renato0307/despertar/internal/ports/mocks"
	"github.com/renato0307/despertar/internal/services"
	"github.com/renato0307/despertar/internal/ui"
)

func newTestSession(t *testing.T, events <-chan tea.Msg) *sessionModel {
	t.Helper()

	repo := portsmocks.NewMockAlarmRepository(t)
	alarms := services.NewAlarmService(repo, nil, nil)
	player := services.NewSoundPlayer(nil)

	s := &sessionModel{
		Model:     ui.NewModel(alarms, player, ui.ModelOptions{ErrorClearDelay: time.Second}),
		events:    events,
		sessionID: "test@local",
		startTime: time.Now(),
	}
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return s
}

func TestWaitForEvent(t *testing.T) {
	events := make(chan tea.Msg, 1)
	events <- "ping"

	assert.Equal(t, hubEventMsg{msg: "ping"}, waitForEvent(events)())

	close(events)
	assert.Nil(t, waitForEvent(events)())
}

func TestSessionModel_ForwardsHubEventsAndWaitsAgain(t *testing.T) {
	events := make(chan tea.Msg, 1)
	s := newTestSession(t, events)

	event := domain.FireEvent{Alarm: domain.Alarm{ID: "a", Label: "Gym"}, FiredAt: time.Now()}
	model, cmd := s.Update(hubEventMsg{msg: ui.AlarmFiredMsg{Event: event}})

	assert.Same(t, s, model)
	require.NotNil(t, cmd)
	assert.Contains(t, s.View(), "Alarm! Gym")
}

func TestSessionModel_QuitIsForwarded(t *testing.T) {
	s := newTestSession(t, make(chan tea.Msg))

	model, _ := s.Update(tea.QuitMsg{})
	assert.Same(t, s, model)
}
