package server

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"workbench/internal/logging"
)

// publicKeyHandler accepts keys listed in the user's authorized_keys
func publicKeyHandler(authorizedKeysPath string) ssh.PublicKeyHandler {
	return func(ctx ssh.Context, key ssh.PublicKey) bool {
		fingerprint := getKeyFingerprint(key)
		user := ctx.User()

		if !isKeyAuthorized(key, authorizedKeysPath) {
			logging.Logger.Warn("Unauthorized SSH key",
				"user", user,
				"fingerprint", fingerprint,
				"key_type", key.Type())
			return false
		}

		logging.Logger.Info("SSH key authenticated",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
		return true
	}
}

// defaultAuthorizedKeysPath returns ~/.ssh/authorized_keys
func defaultAuthorizedKeysPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ssh", "authorized_keys"), nil
}

// isKeyAuthorized checks if the client's public key is in authorized_keys
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	want := clientKey.Marshal()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Skipping unparsable authorized_keys line", "error", err)
			continue
		}

		if bytes.Equal(want, authorizedKey.Marshal()) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
	}
	return false
}

// getKeyFingerprint returns the MD5 fingerprint of an SSH public key
// in the format "MD5:xx:xx:xx:..."
func getKeyFingerprint(key ssh.PublicKey) string {
	hash := md5.Sum(key.Marshal())
	parts := make([]string, len(hash))
	for i, b := range hash {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return "MD5:" + strings.Join(parts, ":")
}
