package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/despertar/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Alarm       AlarmKeys
	Application ApplicationKeys
	Navigation  NavigationKeys
}

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette KeyWithTip
	ForceQuit      KeyWithTip
	Help           KeyWithTip
	Quit           KeyWithTip
}

// NavigationKeys defines key bindings for moving through the alarm list
type NavigationKeys struct {
	ClearFilter KeyWithTip
	Down        KeyWithTip
	Filter      KeyWithTip
	Up          KeyWithTip
}

// AlarmKeys defines key bindings acting on alarms and their sound
type AlarmKeys struct {
	Delete  KeyWithTip
	Edit    KeyWithTip
	New     KeyWithTip
	Preview KeyWithTip
	Stop    KeyWithTip
	Toggle  KeyWithTip
}

// NewKeyMap creates a KeyMap. Pass nil customKeys to use the defaults.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()

	return KeyMap{
		Alarm: AlarmKeys{
			Delete:  buildBinding("delete", defaults, customKeys),
			Edit:    buildBinding("edit", defaults, customKeys),
			New:     buildBinding("new", defaults, customKeys),
			Preview: buildBinding("preview", defaults, customKeys),
			Stop:    buildBinding("stop", defaults, customKeys),
			Toggle:  buildBinding("toggle", defaults, customKeys),
		},
		Application: ApplicationKeys{
			CommandPalette: buildBinding("command_palette", defaults, customKeys),
			ForceQuit:      buildBinding("force_quit", defaults, customKeys),
			Help:           buildBinding("help", defaults, customKeys),
			Quit:           buildBinding("quit", defaults, customKeys),
		},
		Navigation: NavigationKeys{
			ClearFilter: buildBinding("clear_filter", defaults, customKeys),
			Down:        buildBinding("down", defaults, customKeys),
			Filter:      buildBinding("filter", defaults, customKeys),
			Up:          buildBinding("up", defaults, customKeys),
		},
	}
}

// ShortHelp returns the bindings shown in the list legend
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Alarm.New.Binding,
		k.Alarm.Edit.Binding,
		k.Alarm.Toggle.Binding,
		k.Alarm.Delete.Binding,
		k.Alarm.Stop.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns the hints of every binding that has one
func (k KeyMap) Tips() []Tip {
	all := []KeyWithTip{
		k.Alarm.Delete, k.Alarm.Edit, k.Alarm.New, k.Alarm.Preview, k.Alarm.Stop, k.Alarm.Toggle,
		k.Application.CommandPalette, k.Application.ForceQuit, k.Application.Help, k.Application.Quit,
		k.Navigation.ClearFilter, k.Navigation.Down, k.Navigation.Filter, k.Navigation.Up,
	}

	var tips []Tip
	for _, binding := range all {
		if binding.Tip != nil {
			tips = append(tips, *binding.Tip)
		}
	}
	return tips
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(displayKeys(keys), "/")

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = &Tip{Format: def.TipFormat, Key: displayKeys(keys)[0]}
	}

	return result
}

// displayKeys makes whitespace keys readable in help text
func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
