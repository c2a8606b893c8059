package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderBinding(keys.Navigation.Up.Binding)
	content += renderBinding(keys.Navigation.Down.Binding)
	content += renderBinding(keys.Navigation.Filter.Binding)
	content += renderBinding(keys.Navigation.ClearFilter.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Alarms") + "\n"
	content += renderBinding(keys.Alarm.New.Binding)
	content += renderBinding(keys.Alarm.Edit.Binding)
	content += renderBinding(keys.Alarm.Toggle.Binding)
	content += renderBinding(keys.Alarm.Delete.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Sound") + "\n"
	content += renderBinding(keys.Alarm.Preview.Binding)
	content += renderBinding(keys.Alarm.Stop.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.CommandPalette.Binding)
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Indicators") + "\n"
	content += renderShortcut(symbolEnabled, "alarm is on")
	content += renderShortcut(symbolDisabled, "alarm is off")
	content += renderShortcut(symbolRinging, "alarm is ringing")

	return content
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
