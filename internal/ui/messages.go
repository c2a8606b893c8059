package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/domain"
)

// AlarmAwareMsg is implemented by messages that act on the selected alarm
type AlarmAwareMsg interface {
	WithAlarm(alarm domain.Alarm) tea.Msg
}

// Action messages. The list and the command palette emit them; Model handles
// them in updateList.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// NewAlarmMsg requests showing the new alarm form
type NewAlarmMsg struct{}

// EditAlarmMsg requests showing the edit form for an alarm
type EditAlarmMsg struct {
	AlarmID string
}

func (m EditAlarmMsg) WithAlarm(a domain.Alarm) tea.Msg {
	return EditAlarmMsg{AlarmID: a.ID}
}

// ToggleAlarmMsg requests flipping an alarm on or off
type ToggleAlarmMsg struct {
	AlarmID string
}

func (m ToggleAlarmMsg) WithAlarm(a domain.Alarm) tea.Msg {
	return ToggleAlarmMsg{AlarmID: a.ID}
}

// DeleteAlarmMsg requests the delete confirmation for an alarm
type DeleteAlarmMsg struct {
	AlarmID string
}

func (m DeleteAlarmMsg) WithAlarm(a domain.Alarm) tea.Msg {
	return DeleteAlarmMsg{AlarmID: a.ID}
}

// PreviewSoundMsg requests a single-shot play of an alarm's sound
type PreviewSoundMsg struct {
	SoundID string
}

func (m PreviewSoundMsg) WithAlarm(a domain.Alarm) tea.Msg {
	return PreviewSoundMsg{SoundID: a.SoundID}
}

// StopSoundMsg requests silencing whatever is playing
type StopSoundMsg struct{}

// Messages pushed into the program from outside the UI goroutine

// AlarmFiredMsg carries a fire event from the scheduler
type AlarmFiredMsg struct {
	Event domain.FireEvent
}

// NoticeMsg carries a transient notice from the core
type NoticeMsg struct {
	Notice domain.Notice
}
