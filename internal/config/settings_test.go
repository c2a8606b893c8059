package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsEmpty(t *testing.T) {
	t.Setenv("DESPERTAR_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("DESPERTAR_HOME", t.TempDir())

	debug := true
	delay := 3
	require.NoError(t, SaveSettings(&Settings{
		Debug:           &debug,
		ErrorClearDelay: &delay,
		Remote:          &RemoteSettings{Backend: RemoteBackendRedis, RedisAddr: "localhost:6379"},
		UserID:          "user-1",
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.Equal(t, 3, *settings.ErrorClearDelay)
	assert.Equal(t, "localhost:6379", settings.Remote.RedisAddr)
	assert.Equal(t, "user-1", settings.UserID)

	info, err := os.Stat(GetSettingsPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", "{"},
		{"unknown backend", `{"remote":{"backend":"mongo"}}`},
		{"postgres without dsn", `{"remote":{"backend":"postgres"}}`},
		{"rest without url", `{"remote":{"backend":"rest"}}`},
		{"unknown audio backend", `{"audio":{"backend":"alsa"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := LoadSettingsFrom(path)
			assert.ErrorContains(t, err, "invalid settings.json")
		})
	}
}

func TestResolveUserID_EnvWins(t *testing.T) {
	settings := &Settings{UserID: "from-file"}
	assert.Equal(t, "from-file", settings.ResolveUserID())

	t.Setenv("DESPERTAR_USER_ID", "from-env")
	assert.Equal(t, "from-env", settings.ResolveUserID())
}

func TestAudioDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DESPERTAR_HOME", home)

	settings := &Settings{}
	assert.Equal(t, AudioBackendOto, settings.AudioBackend())
	assert.Equal(t, filepath.Join(home, "sounds"), settings.SoundsDir())

	settings.Audio = &AudioSettings{Backend: AudioBackendCommand, SoundsDir: "/tmp/s"}
	assert.Equal(t, AudioBackendCommand, settings.AudioBackend())
	assert.Equal(t, "/tmp/s", settings.SoundsDir())
}

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DESPERTAR_HOME", home)

	assert.Equal(t, home, GetDespertarHome())
	assert.Equal(t, filepath.Join(home, "alarms.db"), GetDBPath())
	assert.Equal(t, filepath.Join(home, "scheduler.lock"), GetLockPath())

	userHome, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 1000, example["max_log_files"])

	remote, ok := example["remote"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost:6379", remote["redis_addr"])
	assert.Equal(t, 0, remote["redis_db"])

	_, ok = example["mqtt"].(map[string]any)
	assert.True(t, ok)
}

func TestKeyBindingValue_JSON(t *testing.T) {
	var keys KeyBindingsConfig
	require.NoError(t, json.Unmarshal([]byte(`{"delete":"D","help":["H","?"]}`), &keys))

	assert.Equal(t, KeyBindingValue{"D"}, keys["delete"])
	assert.Equal(t, KeyBindingValue{"H", "?"}, keys["help"])

	data, err := json.Marshal(keys)
	require.NoError(t, err)
	assert.JSONEq(t, `{"delete":"D","help":["H","?"]}`, string(data))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"delete", "help", "quit"}

	assert.NoError(t, KeyBindingsConfig(nil).Validate(valid))
	assert.NoError(t, KeyBindingsConfig{"delete": {"D"}}.Validate(valid))
	assert.ErrorContains(t, KeyBindingsConfig{"nope": {"x"}}.Validate(valid), "unknown key binding")
	assert.ErrorContains(t, KeyBindingsConfig{"help": {""}}.Validate(valid), "empty value")
	assert.ErrorContains(t, KeyBindingsConfig{"help": {"q"}, "quit": {"q"}}.Validate(valid), "assigned to both")
}
