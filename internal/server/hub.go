package server

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ui"
)

const sessionQueueSize = 32

// hub fans core events out to every connected session. A slow session loses
// events instead of stalling the scheduler.
type hub struct {
	closed   bool
	mu       sync.Mutex
	nextID   int
	sessions map[int]chan tea.Msg
}

func newHub() *hub {
	return &hub{sessions: make(map[int]chan tea.Msg)}
}

// subscribe registers a session. The channel is closed on unsubscribe.
func (h *hub) subscribe() (int, <-chan tea.Msg) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan tea.Msg, sessionQueueSize)
	if h.closed {
		close(ch)
		return -1, ch
	}

	h.nextID++
	h.sessions[h.nextID] = ch
	return h.nextID, ch
}

func (h *hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.sessions[id]; ok {
		delete(h.sessions, id)
		close(ch)
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.sessions {
		delete(h.sessions, id)
		close(ch)
	}
}

func (h *hub) broadcast(msg tea.Msg) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.sessions {
		select {
		case ch <- msg:
		default:
			logging.Logger.Warn("SSH session queue full, dropping event", "session", id)
		}
	}
}

// AlarmFired implements ports.Notifier
func (s *Server) AlarmFired(_ context.Context, event domain.FireEvent) {
	s.hub.broadcast(ui.AlarmFiredMsg{Event: event})
}

// Notify implements ports.Notifier
func (s *Server) Notify(_ context.Context, notice domain.Notice) {
	s.hub.broadcast(ui.NoticeMsg{Notice: notice})
}
