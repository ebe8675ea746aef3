package config

import (
	"os"
	"path/filepath"
)

// GetWorkbenchHome returns WORKBENCH_HOME or the ~/.workbench default
func GetWorkbenchHome() string {
	home := os.Getenv("WORKBENCH_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".workbench"
		}
		return filepath.Join(homeDir, ".workbench")
	}
	return ExpandPath(home)
}

// GetDBPath returns $WORKBENCH_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetWorkbenchHome(), "state.db")
}

// GetSettingsPath returns $WORKBENCH_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetWorkbenchHome(), "settings.json")
}

// GetHostKeyPath returns the SSH host key used by the serve command
func GetHostKeyPath() string {
	return filepath.Join(GetWorkbenchHome(), "ssh", "host_ed25519")
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
