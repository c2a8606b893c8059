package server

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/ui"
)

func TestHub_BroadcastReachesEverySession(t *testing.T) {
	h := newHub()
	_, first := h.subscribe()
	_, second := h.subscribe()

	h.broadcast("hello")

	assert.Equal(t, tea.Msg("hello"), <-first)
	assert.Equal(t, tea.Msg("hello"), <-second)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := newHub()
	id, events := h.subscribe()

	h.unsubscribe(id)
	h.unsubscribe(id)
	h.broadcast("ignored")

	_, ok := <-events
	assert.False(t, ok)
}

func TestHub_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	h := newHub()
	_, events := h.subscribe()

	for i := 0; i < sessionQueueSize+5; i++ {
		h.broadcast(i)
	}

	assert.Len(t, events, sessionQueueSize)
	assert.Equal(t, tea.Msg(0), <-events)
}

func TestHub_SubscribeAfterCloseAll(t *testing.T) {
	h := newHub()
	_, before := h.subscribe()
	h.closeAll()

	_, ok := <-before
	assert.False(t, ok)

	_, after := h.subscribe()
	_, ok = <-after
	assert.False(t, ok)
}

func TestServer_NotifierBroadcastsUIMessages(t *testing.T) {
	s := &Server{hub: newHub()}
	_, events := s.hub.subscribe()

	event := domain.FireEvent{Alarm: domain.Alarm{ID: "a", Label: "Gym"}}
	s.AlarmFired(context.Background(), event)
	s.Notify(context.Background(), domain.InfoNotice("saved"))

	require.Len(t, events, 2)
	assert.Equal(t, ui.AlarmFiredMsg{Event: event}, <-events)
	assert.Equal(t, ui.NoticeMsg{Notice: domain.InfoNotice("saved")}, <-events)
}
