package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

const notifierQueueSize = 64

// sender is the part of *tea.Program the notifier needs
type sender interface {
	Send(msg tea.Msg)
}

// ProgramNotifier forwards core events into a running Bubble Tea program in
// the order they happened. It never blocks the caller: when the queue is full
// the event is dropped.
type ProgramNotifier struct {
	closeOnce sync.Once
	mu        sync.RWMutex
	program   sender
	queue     chan tea.Msg
	startOnce sync.Once
}

// NewProgramNotifier creates a notifier with no program attached
func NewProgramNotifier() *ProgramNotifier {
	return &ProgramNotifier{queue: make(chan tea.Msg, notifierQueueSize)}
}

// Attach sets the program to deliver to and starts forwarding
func (n *ProgramNotifier) Attach(program sender) {
	n.mu.Lock()
	n.program = program
	n.mu.Unlock()

	n.startOnce.Do(func() { go n.forward() })
}

// Close stops forwarding. Events sent afterwards are dropped.
func (n *ProgramNotifier) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		close(n.queue)
		n.queue = nil
	})
}

// AlarmFired implements ports.Notifier
func (n *ProgramNotifier) AlarmFired(_ context.Context, event domain.FireEvent) {
	n.enqueue(AlarmFiredMsg{Event: event})
}

// Notify implements ports.Notifier
func (n *ProgramNotifier) Notify(_ context.Context, notice domain.Notice) {
	n.enqueue(NoticeMsg{Notice: notice})
}

func (n *ProgramNotifier) enqueue(msg tea.Msg) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.queue == nil {
		return
	}
	select {
	case n.queue <- msg:
	default:
		logging.Logger.Warn("UI event queue full, dropping event", "msg", msg)
	}
}

func (n *ProgramNotifier) forward() {
	n.mu.RLock()
	queue := n.queue
	n.mu.RUnlock()
	if queue == nil {
		return
	}

	for msg := range queue {
		n.mu.RLock()
		program := n.program
		n.mu.RUnlock()

		if program != nil {
			program.Send(msg)
		}
	}
}
