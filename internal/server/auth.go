package server

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/despertar/internal/logging"
)

// loadAuthorizedKeys parses an authorized_keys file. Comments and lines that
// fail to parse are skipped.
func loadAuthorizedKeys(path string) ([]ssh.PublicKey, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open authorized_keys: %w", err)
	}
	defer file.Close()

	var keys []ssh.PublicKey
	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, comment, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Skipping authorized_keys line", "line", lineNo, "error", err)
			continue
		}
		logging.Logger.Debug("Authorized key loaded", "comment", comment, "fingerprint", fingerprint(key))
		keys = append(keys, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authorized_keys: %w", err)
	}
	return keys, nil
}

// isKeyAuthorized reports whether key is listed in the authorized_keys file.
// The file is read on every call so edits apply to the next login.
func isKeyAuthorized(key ssh.PublicKey, authorizedKeysPath string) bool {
	keys, err := loadAuthorizedKeys(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Cannot check SSH key", "error", err, "path", authorizedKeysPath)
		return false
	}

	for _, authorized := range keys {
		if ssh.KeysEqual(key, authorized) {
			return true
		}
	}
	return false
}

// fingerprint returns the SHA256 fingerprint used in the audit log
func fingerprint(key ssh.PublicKey) string {
	return gossh.FingerprintSHA256(key)
}
