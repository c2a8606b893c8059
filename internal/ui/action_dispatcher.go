package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/domain"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct {
	alarm *domain.Alarm
}

// NewActionDispatcher creates a new action dispatcher.
// alarm is nil when nothing is selected.
func NewActionDispatcher(alarm *domain.Alarm) *ActionDispatcher {
	return &ActionDispatcher{alarm: alarm}
}

// Dispatch returns the tea.Msg for the given key definition, or nil when the
// action cannot run
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if alarmMsg, ok := def.Msg.(AlarmAwareMsg); ok {
		if d.alarm == nil {
			return nil
		}
		return alarmMsg.WithAlarm(*d.alarm)
	}

	return def.Msg
}
