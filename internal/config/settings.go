package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults used when settings.json leaves a value out
const (
	DefaultMaxLogFiles     = 1000
	DefaultRefreshInterval = 3 * time.Second
	DefaultSSHHost         = "localhost"
	DefaultSSHPort         = 23235
	DefaultWatchDebounce   = 250 * time.Millisecond
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

// KeyBindingsConfig holds custom key binding overrides.
// Keys are binding names (e.g. "filter", "quit"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown binding names, empty values and keys bound twice.
// validNames should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $WORKBENCH_HOME/settings.json
type Settings struct {
	Debug                  *bool             `json:"debug,omitempty"`
	Editor                 string            `json:"editor,omitempty"`
	Keys                   KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles            *int              `json:"max_log_files,omitempty"`
	RefreshIntervalSeconds *int              `json:"refresh_interval_seconds,omitempty"`
	ShowIgnored            *bool             `json:"show_ignored,omitempty"`
	SSHHost                string            `json:"ssh_host,omitempty"`
	SSHPort                *int              `json:"ssh_port,omitempty"`
	WatchDebounceMs        *int              `json:"watch_debounce_ms,omitempty"`
}

// RefreshInterval is the poll period of the open folder
func (s *Settings) RefreshInterval() time.Duration {
	if s == nil || s.RefreshIntervalSeconds == nil || *s.RefreshIntervalSeconds <= 0 {
		return DefaultRefreshInterval
	}
	return time.Duration(*s.RefreshIntervalSeconds) * time.Second
}

// WatchDebounce is the quiet period before a filesystem change triggers a refresh
func (s *Settings) WatchDebounce() time.Duration {
	if s == nil || s.WatchDebounceMs == nil || *s.WatchDebounceMs <= 0 {
		return DefaultWatchDebounce
	}
	return time.Duration(*s.WatchDebounceMs) * time.Millisecond
}

// ShowIgnoredEntries reports whether entries without SCM status are listed
func (s *Settings) ShowIgnoredEntries() bool {
	return s != nil && s.ShowIgnored != nil && *s.ShowIgnored
}

// SSHAddress returns host and port for the serve command
func (s *Settings) SSHAddress() (string, int) {
	host, port := DefaultSSHHost, DefaultSSHPort
	if s == nil {
		return host, port
	}
	if s.SSHHost != "" {
		host = s.SSHHost
	}
	if s.SSHPort != nil && *s.SSHPort > 0 {
		port = *s.SSHPort
	}
	return host, port
}

// LoadSettings loads settings from $WORKBENCH_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific file
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

	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}

	return &settings, nil
}

// SaveSettings saves settings to $WORKBENCH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
