package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/services"
	"github.com/renato0307/despertar/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateCommandPalette
	stateConfirmDelete
	stateForm
	stateHelp
)

// ModelOptions configures the TUI
type ModelOptions struct {
	DefaultSound    string
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
}

type Model struct {
	alarms          *services.AlarmService
	commandPalette  *CommandPalette    // Command palette overlay
	defaultSound    string             // Sound preselected in the new alarm form
	deleteConfirmed *bool              // Delete decision (pointer to persist across updates)
	deleteDialog    *Dialog            // Delete confirmation dialog
	deleteID        string             // Alarm awaiting delete confirmation
	devMode         bool               // Development mode (shows version info in dialogs)
	errorManager    *ErrorManager      // Notice display and auto-clearing
	firing          []domain.FireEvent // Events shown in the banner until stopped
	firingAudible   bool               // The player was sounding when the last event arrived
	formDialog      *Dialog            // Add/edit alarm dialog
	height          int
	helpScreen      *Dialog // Help screen dialog
	keys            KeyMap
	list            *AlarmList
	player          *services.SoundPlayer
	state           uiState
	width           int
}

func NewModel(alarms *services.AlarmService, player *services.SoundPlayer, opts ModelOptions) *Model {
	keys := NewKeyMap(opts.Keys)

	return &Model{
		alarms:       alarms,
		defaultSound: opts.DefaultSound,
		devMode:      opts.DevMode,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		keys:         keys,
		list:         NewAlarmList(alarms, keys, opts.DevMode),
		player:       player,
		state:        stateList,
	}
}

func (m *Model) Init() tea.Cmd {
	// Starts the list's refresh polling. The loop lives for the whole program.
	return m.list.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages handled the same way in every state
	switch msg := msg.(type) {
	case AlarmFiredMsg:
		logging.Logger.Info("Alarm fired", "id", msg.Event.Alarm.ID, "time", msg.Event.Alarm.Time.String())
		m.firing = append(m.firing, msg.Event)
		m.firingAudible = m.isPlaying()
		m.list.SetRinging(msg.Event.Alarm.ID)
		return m, nil

	case NoticeMsg:
		m.errorManager.SetNotice(msg.Notice)
		return m, m.errorManager.ClearAfterDelay()

	case clearNoticeMsg:
		m.errorManager.handleClear(msg)
		return m, nil

	case checkStateMsg:
		// The sound may have been stopped from outside the TUI
		if len(m.firing) > 0 && m.firingAudible && !m.isPlaying() {
			m.clearFiring()
		}
		_, cmd := m.list.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateListHeight()

	case tea.KeyMsg:
		if len(m.firing) > 0 {
			return m.updateFiring(msg)
		}
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case stateForm:
		return m.updateForm(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

// updateFiring handles keys while the banner is up. Only stop keys get through.
func (m *Model) updateFiring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Alarm.Stop.Binding, m.keys.Navigation.ClearFilter.Binding):
		m.player.Stop()
		m.clearFiring()
		return m, nil
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle action messages from AlarmList and the command palette
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowCommandPaletteMsg:
		var alarmName string
		if alarm, ok := m.list.Selected(); ok {
			alarmName = alarm.DisplayName()
		}
		m.commandPalette = NewCommandPalette(alarmName, m.keys)
		m.state = stateCommandPalette

		initCmd := m.commandPalette.Init()
		_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case NewAlarmMsg:
		contentForm := NewAlarmForm(m.alarms, nil, m.defaultSound)
		m.formDialog = NewDialog("New Alarm", contentForm, m.devMode)
		m.state = stateForm
		return m, m.formDialog.Init()

	case EditAlarmMsg:
		alarm, ok := m.alarms.Get(msg.AlarmID)
		if !ok {
			return m, nil
		}
		contentForm := NewAlarmForm(m.alarms, &alarm, m.defaultSound)
		m.formDialog = NewDialog("Edit Alarm", contentForm, m.devMode)
		m.state = stateForm
		return m, m.formDialog.Init()

	case ToggleAlarmMsg:
		return m.handleToggle(msg.AlarmID)

	case DeleteAlarmMsg:
		alarm, ok := m.alarms.Get(msg.AlarmID)
		if !ok {
			return m, nil
		}
		confirmed := false
		m.deleteConfirmed = &confirmed
		m.deleteID = alarm.ID
		m.deleteDialog = m.createDeleteDialog(alarm)
		m.state = stateConfirmDelete
		return m, m.deleteDialog.Init()

	case PreviewSoundMsg:
		if err := m.player.Preview(msg.SoundID); err != nil {
			return m.showError(fmt.Errorf("failed to preview sound: %w", err))
		}
		return m, nil

	case StopSoundMsg:
		m.player.Stop()
		m.clearFiring()
		return m, nil
	}

	// Delegate to AlarmList component
	newList, cmd := m.list.Update(msg)
	if al, ok := newList.(*AlarmList); ok {
		m.list = al
	}
	return m, cmd
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if m.commandPalette.Completed {
		result := m.commandPalette.Result
		m.state = stateList
		m.commandPalette = nil

		if result.Cancelled || result.Action == nil {
			return m, nil
		}

		var selected *domain.Alarm
		if alarm, ok := m.list.Selected(); ok {
			selected = &alarm
		}

		if actionMsg := NewActionDispatcher(selected).Dispatch(*result.Action); actionMsg != nil {
			return m.updateList(actionMsg)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Delegate to dialog (it handles cancel internally)
	updated, cmd := m.formDialog.Update(msg)
	m.formDialog = updated.(*Dialog)

	if content, ok := m.formDialog.Content().(*AlarmForm); ok && content.Completed {
		result := content.Result()
		m.state = stateList
		m.formDialog = nil

		if result.Error != nil {
			return m.showError(result.Error)
		}
		if result.Cancelled {
			return m, nil
		}

		refreshCmd := m.list.Refresh()
		m.list.SelectID(result.Alarm.ID)
		m.errorManager.SetNotice(domain.InfoNotice("Alarm set for " + result.Alarm.Time.String()))
		return m, tea.Batch(refreshCmd, m.errorManager.ClearAfterDelay())
	}

	return m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Navigation.ClearFilter.Binding, m.keys.Application.ForceQuit.Binding) {
			m.resetDelete()
			return m, nil
		}
	}

	if m.deleteDialog == nil {
		m.resetDelete()
		return m, nil
	}

	updated, cmd := m.deleteDialog.Update(msg)
	m.deleteDialog = updated.(*Dialog)

	if form, ok := m.deleteDialog.Content().(*huh.Form); ok && form.State == huh.StateCompleted {
		confirmed := *m.deleteConfirmed
		id := m.deleteID
		m.resetDelete()

		logging.Logger.Info("Delete decision", "id", id, "confirmed", confirmed)
		if !confirmed {
			return m, nil
		}

		if !m.alarms.Delete(context.Background(), id) {
			return m, nil
		}
		refreshCmd := m.list.Refresh()
		m.errorManager.SetNotice(domain.InfoNotice("Alarm deleted"))
		return m, tea.Batch(refreshCmd, m.errorManager.ClearAfterDelay())
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateList
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

// handleToggle flips an alarm. An unknown id is ignored.
func (m *Model) handleToggle(id string) (tea.Model, tea.Cmd) {
	alarm, ok := m.alarms.Toggle(context.Background(), id)
	if !ok {
		return m, nil
	}

	text := "Alarm off"
	if alarm.Enabled {
		text = "Alarm set for " + alarm.Time.String()
	}
	refreshCmd := m.list.Refresh()
	m.errorManager.SetNotice(domain.InfoNotice(text))
	return m, tea.Batch(refreshCmd, m.errorManager.ClearAfterDelay())
}

func (m *Model) createDeleteDialog(alarm domain.Alarm) *Dialog {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete alarm %s?", alarm.DisplayName())).
				Description(fmt.Sprintf("%s, %s", alarm.Time.String(), domain.FormatDays(alarm.Days))).
				Value(m.deleteConfirmed).
				Affirmative("Delete").
				Negative("Keep"),
		),
	)
	return NewDialog("Delete Alarm", form, m.devMode)
}

func (m *Model) resetDelete() {
	m.state = stateList
	m.deleteConfirmed = nil
	m.deleteDialog = nil
	m.deleteID = ""
}

func (m *Model) showError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, services.ErrNoAudio) {
		logging.Logger.Warn("No audio output available", "error", err)
	}
	m.errorManager.SetError(err)
	return m, m.errorManager.ClearAfterDelay()
}

func (m *Model) clearFiring() {
	m.firing = nil
	m.firingAudible = false
	m.list.SetRinging("")
}

func (m *Model) isPlaying() bool {
	_, active := m.player.Active()
	return active
}

// recalculateListHeight sets the list height from the window size
func (m *Model) recalculateListHeight() {
	// Header (2) + legend (1) + spacing (1) + bottom section (3)
	overhead := 7
	m.list.SetSize(m.width, max(m.height-overhead, 1))
}

func (m *Model) View() string {
	var view string

	switch m.state {
	case stateList:
		view = m.listView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			view = bottomAnchoredOverlay(m.listView(), m.commandPalette.View(), m.width, m.height, m.commandPalette.Height())
		}
	case stateConfirmDelete:
		if m.deleteDialog != nil {
			view = m.deleteDialog.View()
		}
	case stateForm:
		if m.formDialog != nil {
			view = m.formDialog.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			view = m.helpScreen.View()
		}
	}

	if len(m.firing) > 0 {
		return compositeOverlay(view, m.bannerView(), m.width, m.height)
	}
	return view
}

// listView renders the list with the fixed two-line bottom section.
// A notice takes priority over the tip.
func (m *Model) listView() string {
	view := m.list.View() + "\n"

	var bottom string
	if m.errorManager.HasNotice() {
		bottom = m.errorManager.View(m.width)
	} else {
		bottom = m.list.CurrentTip()
	}
	if lines := lipgloss.Height(bottom); lines < maxNoticeLines {
		bottom += strings.Repeat("\n ", maxNoticeLines-lines)
	}
	return view + bottom
}

func (m *Model) bannerView() string {
	lines := make([]string, 0, len(m.firing)+2)
	for _, event := range m.firing {
		lines = append(lines, event.Message())
	}

	stopKey := m.keys.Alarm.Stop.Binding.Help().Key
	lines = append(lines, "", theme.BannerHintStyle.Render(fmt.Sprintf("press %s or esc to stop", stopKey)))
	return theme.BannerStyle.Render(strings.Join(lines, "\n"))
}
