package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default binding for a key"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyBindingOutput is one row of the key listing
type keyBindingOutput struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}

	rows := make(map[string]keyBindingOutput, len(names))
	for _, name := range names {
		row := keyBindingOutput{Default: readableKeys(defaults[name])}
		if def := ui.GetKeyDefinition(name); def != nil {
			row.Help = def.Help
		}
		if keys := custom[name]; len(keys) > 0 {
			row.Custom = readableKeys(keys)
		}
		rows[name] = row
	}

	if s.Format == "json" {
		return printJSON(rows)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tCUSTOM\tACTION")
	for _, name := range names {
		row := rows[name]
		customStr := "-"
		if len(row.Custom) > 0 {
			customStr = strings.Join(row.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, strings.Join(row.Default, ", "), customStr, row.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'despertar settings keys set <name> <value>' to customize.")
	return nil
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., toggle, stop, quit)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, space, or comma-separated for multiple: up,k)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if err := checkKeyName(s.Key); err != nil {
		return err
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)
	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	})
	if err != nil {
		return err
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(readableKeys(values), ", "))
	return nil
}

// SettingsKeysResetCmd removes a custom key binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name to restore"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if err := checkKeyName(s.Key); err != nil {
		return err
	}

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	})
	if err != nil {
		return err
	}

	fmt.Printf("'%s' restored to: %s\n", s.Key, strings.Join(readableKeys(ui.GetDefaultKeyBindings()[s.Key]), ", "))
	return nil
}

func checkKeyName(name string) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	return nil
}

// updateKeyBindings applies change to the saved bindings, validates and saves them
func updateKeyBindings(change func(config.KeyBindingsConfig)) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	change(settings.Keys)
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// parseKeyValues parses comma-separated key values. "space" names the space bar.
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		switch trimmed := strings.TrimSpace(p); trimmed {
		case "":
		case "space":
			result = append(result, " ")
		default:
			result = append(result, trimmed)
		}
	}
	return result
}

// readableKeys names the space bar for display
func readableKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
