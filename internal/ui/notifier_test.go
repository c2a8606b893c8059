package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) received() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

func TestProgramNotifier_ForwardsInOrder(t *testing.T) {
	n := NewProgramNotifier()
	program := &recordingSender{}
	n.Attach(program)
	defer n.Close()

	first := domain.FireEvent{Alarm: domain.Alarm{ID: "a"}}
	second := domain.FireEvent{Alarm: domain.Alarm{ID: "b"}}
	n.AlarmFired(context.Background(), first)
	n.AlarmFired(context.Background(), second)
	n.Notify(context.Background(), domain.ErrorNotice("failed to save your alarms"))

	require.Eventually(t, func() bool { return len(program.received()) == 3 }, time.Second, 5*time.Millisecond)

	msgs := program.received()
	assert.Equal(t, AlarmFiredMsg{Event: first}, msgs[0])
	assert.Equal(t, AlarmFiredMsg{Event: second}, msgs[1])
	assert.Equal(t, NoticeMsg{Notice: domain.ErrorNotice("failed to save your alarms")}, msgs[2])
}

func TestProgramNotifier_CloseDropsLaterEvents(t *testing.T) {
	n := NewProgramNotifier()
	n.Close()
	n.Close()

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.InfoNotice("ignored"))
	})
}
