package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // Shown in the command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text and tips.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "clear_filter", Defaults: []string{"esc"}, Help: "clear filter"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next alarm"},
	{Name: "filter", Defaults: []string{"/"}, Help: "filter alarm list", TipFormat: "press %s to filter alarms by label"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous alarm"},

	// Alarm keys
	{Name: "delete", Defaults: []string{"d", "x"}, Help: "delete alarm", IsPaletteAction: true, Msg: DeleteAlarmMsg{}, TipFormat: "press %s to delete an alarm"},
	{Name: "edit", Defaults: []string{"e", "enter"}, Help: "edit alarm", IsPaletteAction: true, Msg: EditAlarmMsg{}, TipFormat: "press %s to change time, days or sound"},
	{Name: "new", Defaults: []string{"n", "a"}, Help: "create new alarm", IsPaletteAction: true, Msg: NewAlarmMsg{}, TipFormat: "press %s to set a new alarm"},
	{Name: "preview", Defaults: []string{"p"}, Help: "preview alarm sound", IsPaletteAction: true, Msg: PreviewSoundMsg{}, TipFormat: "press %s to hear the selected alarm's sound"},
	{Name: "stop", Defaults: []string{"s"}, Help: "stop ringing alarm", IsPaletteAction: true, Msg: StopSoundMsg{}, TipFormat: "press %s to silence a ringing alarm"},
	{Name: "toggle", Defaults: []string{" ", "t"}, Help: "enable/disable alarm", IsPaletteAction: true, Msg: ToggleAlarmMsg{}, TipFormat: "press %s to switch an alarm on or off"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that appear in the command palette
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.IsPaletteAction {
			actions = append(actions, def)
		}
	}
	return actions
}
