package config

import (
	"os"
	"path/filepath"
)

// GetDespertarHome returns DESPERTAR_HOME or ~/.despertar by default
func GetDespertarHome() string {
	home := os.Getenv("DESPERTAR_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".despertar"
		}
		return filepath.Join(homeDir, ".despertar")
	}
	return ExpandPath(home)
}

// GetDBPath returns $DESPERTAR_HOME/alarms.db
func GetDBPath() string {
	return filepath.Join(GetDespertarHome(), "alarms.db")
}

// GetSettingsPath returns $DESPERTAR_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetDespertarHome(), "settings.json")
}

// GetSoundsDir returns $DESPERTAR_HOME/sounds
func GetSoundsDir() string {
	return filepath.Join(GetDespertarHome(), "sounds")
}

// GetLockPath returns $DESPERTAR_HOME/scheduler.lock
func GetLockPath() string {
	return filepath.Join(GetDespertarHome(), "scheduler.lock")
}

// GetSSHDir returns $DESPERTAR_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetDespertarHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
