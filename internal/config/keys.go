package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides by binding name
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown names, empty values and keys bound twice.
// Names are checked in sorted order so the reported conflict is stable.
// validNames comes from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	names := make([]string, 0, len(k))
	for name := range k {
		if !slices.Contains(validNames, name) {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	boundTo := make(map[string]string)
	for _, name := range names {
		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if other, taken := boundTo[key]; taken {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, other, name)
			}
			boundTo[key] = name
		}
	}
	return nil
}
