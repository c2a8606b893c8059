package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Remote backends supported by the alarm mirror
const (
	RemoteBackendNone     = ""
	RemoteBackendPostgres = "postgres"
	RemoteBackendRedis    = "redis"
	RemoteBackendREST     = "rest"
)

// Audio backends
const (
	AudioBackendCommand = "command"
	AudioBackendOto     = "oto"
)

// DefaultErrorClearDelay is the default number of seconds before TUI notices clear
const DefaultErrorClearDelay = 10

// RemoteSettings configures the hosted per-user mirror
type RemoteSettings struct {
	Backend        string `json:"backend,omitempty"`
	PostgresDSN    string `json:"postgres_dsn,omitempty"`
	RedisAddr      string `json:"redis_addr,omitempty"`
	RedisDB        *int   `json:"redis_db,omitempty"`
	RedisKeyPrefix string `json:"redis_key_prefix,omitempty"`
	RedisPassword  string `json:"redis_password,omitempty"`
	RESTAPIKey     string `json:"rest_api_key,omitempty"`
	RESTURL        string `json:"rest_url,omitempty"`
}

// Validate checks that the selected backend has what it needs
func (r *RemoteSettings) Validate() error {
	if r == nil {
		return nil
	}
	switch r.Backend {
	case RemoteBackendNone:
		return nil
	case RemoteBackendPostgres:
		if r.PostgresDSN == "" {
			return fmt.Errorf("remote.postgres_dsn is required for the postgres backend")
		}
	case RemoteBackendRedis:
		if r.RedisAddr == "" {
			return fmt.Errorf("remote.redis_addr is required for the redis backend")
		}
	case RemoteBackendREST:
		if r.RESTURL == "" {
			return fmt.Errorf("remote.rest_url is required for the rest backend")
		}
	default:
		return fmt.Errorf("unknown remote backend '%s'", r.Backend)
	}
	return nil
}

// MQTTSettings configures the MQTT notifier
type MQTTSettings struct {
	Broker      string `json:"broker,omitempty"`
	ClientID    string `json:"client_id,omitempty"`
	Password    string `json:"password,omitempty"`
	TopicPrefix string `json:"topic_prefix,omitempty"`
	Username    string `json:"username,omitempty"`
}

// AudioSettings configures sound playback
type AudioSettings struct {
	Backend   string `json:"backend,omitempty"`
	SoundsDir string `json:"sounds_dir,omitempty"`
}

// Settings represents the structure of $DESPERTAR_HOME/settings.json
type Settings struct {
	Audio           *AudioSettings    `json:"audio,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	DefaultSound    string            `json:"default_sound,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	MQTT            *MQTTSettings     `json:"mqtt,omitempty"`
	Remote          *RemoteSettings   `json:"remote,omitempty"`
	UserID          string            `json:"user_id,omitempty"`
}

// Validate checks the settings for configuration errors
func (s *Settings) Validate() error {
	if err := s.Remote.Validate(); err != nil {
		return err
	}
	if s.Audio != nil && s.Audio.Backend != "" &&
		s.Audio.Backend != AudioBackendOto && s.Audio.Backend != AudioBackendCommand {
		return fmt.Errorf("unknown audio backend '%s'", s.Audio.Backend)
	}
	return nil
}

// ResolveUserID returns the user identity with precedence:
// DESPERTAR_USER_ID env var > settings.json
func (s *Settings) ResolveUserID() string {
	if env := strings.TrimSpace(os.Getenv("DESPERTAR_USER_ID")); env != "" {
		return env
	}
	return s.UserID
}

// SoundsDir returns the configured sounds directory or the default one
func (s *Settings) SoundsDir() string {
	if s.Audio != nil && s.Audio.SoundsDir != "" {
		return ExpandPath(s.Audio.SoundsDir)
	}
	return GetSoundsDir()
}

// AudioBackend returns the configured audio backend, oto by default
func (s *Settings) AudioBackend() string {
	if s.Audio != nil && s.Audio.Backend != "" {
		return s.Audio.Backend
	}
	return AudioBackendOto
}

// LoadSettings loads settings from $DESPERTAR_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $DESPERTAR_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
