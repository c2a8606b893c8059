package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/services"
	"github.com/renato0307/despertar/internal/theme"
)

// pollInterval matches the scheduler tick so countdowns stay current
const pollInterval = time.Second

const (
	symbolDisabled = "○"
	symbolEnabled  = "●"
	symbolRinging  = "◉"
)

// checkStateMsg triggers a reload of the alarm list
type checkStateMsg struct{}

// AlarmItem implements list.Item
type AlarmItem struct {
	Alarm   domain.Alarm
	Ringing bool
}

// FilterValue implements list.Item
func (i AlarmItem) FilterValue() string {
	return i.Alarm.Label + " " + i.Alarm.Time.String() + " " + domain.FormatDays(i.Alarm.Days)
}

// AlarmDelegate renders one alarm per line
type AlarmDelegate struct {
	now time.Time
}

// Height implements list.ItemDelegate
func (d AlarmDelegate) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d AlarmDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d AlarmDelegate) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d AlarmDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(AlarmItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderAlarmLine(item, index, index == m.Index(), d.now))
}

func renderAlarmLine(item AlarmItem, index int, selected bool, now time.Time) string {
	alarm := item.Alarm

	cursor := " "
	if selected {
		cursor = ">"
	}

	var icon string
	switch {
	case item.Ringing:
		icon = theme.RingingStyle.Render(symbolRinging)
	case alarm.Enabled:
		icon = theme.EnabledStyle.Render(symbolEnabled)
	default:
		icon = theme.DisabledStyle.Render(symbolDisabled)
	}

	timeStyle := theme.TimeStyle
	if !alarm.Enabled {
		timeStyle = theme.DisabledStyle
	}

	line := fmt.Sprintf("%s %02d. %s %s", cursor, index+1, icon, timeStyle.Render(alarm.Time.String()))
	if alarm.Label != "" {
		labelStyle := theme.NormalStyle
		if selected {
			labelStyle = theme.SelectedStyle
		}
		line += "  " + labelStyle.Render(alarm.Label)
	}
	line += "  " + theme.DaysStyle.Render(domain.FormatDays(alarm.Days))

	if alarm.Enabled && !alarm.NextTrigger.IsZero() {
		line += "  " + theme.NextTriggerStyle.Render(formatNextTrigger(alarm.NextTrigger, now))
	}

	return line
}

// formatNextTrigger renders "next Tue 07:30 (in 9h12m)"
func formatNextTrigger(next, now time.Time) string {
	until := next.Sub(now)
	if until <= 0 {
		return "ringing now"
	}
	return fmt.Sprintf("next %s (in %s)", next.Format("Mon 15:04"), formatUntil(until))
}

// formatUntil renders a countdown rounded up to the minute
func formatUntil(d time.Duration) string {
	minutes := int((d + time.Minute - 1) / time.Minute)
	days, minutes := minutes/(24*60), minutes%(24*60)
	hours, minutes := minutes/60, minutes%60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// AlarmList is the main list component. Key presses are turned into action
// messages that Model handles.
type AlarmList struct {
	alarms     *services.AlarmService
	currentTip *Tip
	devMode    bool
	keys       KeyMap
	list       list.Model
	listHeight int
	now        func() time.Time
	ringingID  string
	width      int
}

// NewAlarmList creates the list from the service's current collection
func NewAlarmList(alarms *services.AlarmService, keys KeyMap, devMode bool) *AlarmList {
	al := &AlarmList{
		alarms:  alarms,
		devMode: devMode,
		keys:    keys,
		now:     time.Now,
	}

	l := list.New(nil, AlarmDelegate{now: al.now()}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	al.list = l

	if tips := keys.Tips(); len(tips) > 0 {
		tip := tips[rand.Intn(len(tips))]
		al.currentTip = &tip
	}

	al.Refresh()
	return al
}

// Init starts the refresh polling
func (al *AlarmList) Init() tea.Cmd {
	return pollStateCmd()
}

// Update handles messages for the list
func (al *AlarmList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkStateMsg:
		// Exactly one new poll is scheduled per checkStateMsg
		if al.list.FilterState() != list.Filtering {
			al.Refresh()
		}
		return al, pollStateCmd()

	case tea.KeyMsg:
		if al.list.FilterState() == list.Filtering {
			var cmd tea.Cmd
			al.list, cmd = al.list.Update(msg)
			return al, cmd
		}

		switch {
		case key.Matches(msg, al.keys.Application.Quit.Binding, al.keys.Application.ForceQuit.Binding):
			return al, emit(QuitMsg{})

		case key.Matches(msg, al.keys.Application.Help.Binding):
			return al, emit(ShowHelpMsg{})

		case key.Matches(msg, al.keys.Application.CommandPalette.Binding):
			return al, emit(ShowCommandPaletteMsg{})

		case key.Matches(msg, al.keys.Alarm.New.Binding):
			return al, emit(NewAlarmMsg{})

		case key.Matches(msg, al.keys.Alarm.Stop.Binding):
			return al, emit(StopSoundMsg{})

		case key.Matches(msg, al.keys.Alarm.Edit.Binding):
			return al, al.emitForSelected(EditAlarmMsg{})

		case key.Matches(msg, al.keys.Alarm.Toggle.Binding):
			return al, al.emitForSelected(ToggleAlarmMsg{})

		case key.Matches(msg, al.keys.Alarm.Delete.Binding):
			return al, al.emitForSelected(DeleteAlarmMsg{})

		case key.Matches(msg, al.keys.Alarm.Preview.Binding):
			return al, al.emitForSelected(PreviewSoundMsg{})

		case key.Matches(msg, al.keys.Navigation.ClearFilter.Binding):
			if al.list.FilterState() != list.Unfiltered {
				al.list.ResetFilter()
			}
			return al, nil
		}

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			al.list.CursorUp()
			return al, nil
		case tea.MouseWheelDown:
			al.list.CursorDown()
			return al, nil
		}
	}

	var cmd tea.Cmd
	al.list, cmd = al.list.Update(msg)
	return al, cmd
}

// View renders the header, the legend and the list
func (al *AlarmList) View() string {
	now := al.now()

	s := renderHeader(al.devMode, "", now)
	s += theme.HelpStyle.Render(al.renderLegend()) + "\n"

	if len(al.list.Items()) == 0 {
		s += theme.HelpLabelStyle.Render("No alarms. Press ") +
			theme.HelpShortcutStyle.Render(al.keys.Alarm.New.Binding.Help().Key) +
			theme.HelpLabelStyle.Render(" to set one.") + "\n"
	} else {
		s += al.list.View()
	}

	// Fixed height so the bottom section never moves
	expectedHeight := 4 + al.listHeight
	if actual := lipgloss.Height(s); actual < expectedHeight {
		s += strings.Repeat("\n", expectedHeight-actual)
	}
	return s
}

// Refresh rebuilds the items from the service
func (al *AlarmList) Refresh() tea.Cmd {
	alarms := al.alarms.List()
	items := make([]list.Item, len(alarms))
	for i, a := range alarms {
		items[i] = AlarmItem{Alarm: a, Ringing: a.ID == al.ringingID}
	}

	al.list.SetDelegate(AlarmDelegate{now: al.now()})
	return al.list.SetItems(items)
}

// Selected returns the highlighted alarm
func (al *AlarmList) Selected() (domain.Alarm, bool) {
	item, ok := al.list.SelectedItem().(AlarmItem)
	if !ok {
		return domain.Alarm{}, false
	}
	return item.Alarm, true
}

// SelectID moves the cursor to the alarm with the given id
func (al *AlarmList) SelectID(id string) {
	for i, item := range al.list.Items() {
		if a, ok := item.(AlarmItem); ok && a.Alarm.ID == id {
			al.list.Select(i)
			return
		}
	}
}

// SetRinging marks the alarm whose sound is playing. Empty clears it.
func (al *AlarmList) SetRinging(id string) {
	al.ringingID = id
	al.Refresh()
}

// SetSize sets the available size. listHeight excludes header and bottom section.
func (al *AlarmList) SetSize(width, listHeight int) {
	al.width = width
	al.listHeight = listHeight
	al.list.SetSize(width, listHeight)
}

// CurrentTip returns the rendered tip, or empty
func (al *AlarmList) CurrentTip() string {
	if al.currentTip == nil {
		return ""
	}
	return al.currentTip.Render()
}

func (al *AlarmList) renderLegend() string {
	var enabled, disabled int
	for _, item := range al.list.Items() {
		if a, ok := item.(AlarmItem); ok && a.Alarm.Enabled {
			enabled++
		} else {
			disabled++
		}
	}

	legend := theme.EnabledStyle.Render(symbolEnabled) + theme.HelpLabelStyle.Render(fmt.Sprintf(" %d on  ", enabled)) +
		theme.DisabledStyle.Render(symbolDisabled) + theme.HelpLabelStyle.Render(fmt.Sprintf(" %d off", disabled))

	for _, b := range al.keys.ShortHelp() {
		legend += "  " + theme.HelpShortcutStyle.Render(b.Help().Key) + theme.HelpLabelStyle.Render(" "+b.Help().Desc)
	}
	return legend
}

func (al *AlarmList) emitForSelected(prototype AlarmAwareMsg) tea.Cmd {
	alarm, ok := al.Selected()
	if !ok {
		return nil
	}
	return emit(prototype.WithAlarm(alarm))
}

// emit wraps a message in a command
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// pollStateCmd waits pollInterval then sends checkStateMsg
func pollStateCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return checkStateMsg{}
	})
}
