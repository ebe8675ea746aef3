package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("WORKBENCH_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, DefaultRefreshInterval, settings.RefreshInterval())
	assert.Equal(t, DefaultWatchDebounce, settings.WatchDebounce())
	assert.False(t, settings.ShowIgnoredEntries())
	host, port := settings.SSHAddress()
	assert.Equal(t, DefaultSSHHost, host)
	assert.Equal(t, DefaultSSHPort, port)
}

func TestLoadSettings_ParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORKBENCH_HOME", home)

	content := `{
		"refresh_interval_seconds": 10,
		"watch_debounce_ms": 500,
		"show_ignored": true,
		"ssh_host": "0.0.0.0",
		"ssh_port": 2222,
		"keys": {"filter": "f", "up": ["up", "w"]}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, settings.RefreshInterval())
	assert.Equal(t, 500*time.Millisecond, settings.WatchDebounce())
	assert.True(t, settings.ShowIgnoredEntries())
	host, port := settings.SSHAddress()
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, 2222, port)
	assert.Equal(t, KeyBindingValue{"f"}, settings.Keys["filter"])
	assert.Equal(t, KeyBindingValue{"up", "w"}, settings.Keys["up"])
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORKBENCH_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("WORKBENCH_HOME", filepath.Join(t.TempDir(), "nested"))
	interval := 7

	require.NoError(t, SaveSettings(&Settings{RefreshIntervalSeconds: &interval}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, settings.RefreshInterval())
}

func TestKeyBindingValue_MarshalSingle(t *testing.T) {
	data, err := json.Marshal(KeyBindingValue{"x"})
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(data))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"filter", "quit", "up"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil", nil, ""},
		{"ok", KeyBindingsConfig{"filter": {"f"}, "up": {"up", "k"}}, ""},
		{"unknown", KeyBindingsConfig{"launch": {"l"}}, "unknown key binding"},
		{"empty", KeyBindingsConfig{"quit": {""}}, "empty value"},
		{"duplicate", KeyBindingsConfig{"quit": {"q"}, "filter": {"q"}}, "assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, "code", example["editor"])
	assert.Contains(t, example, "keys")
	assert.Len(t, example, 9)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "src"), ExpandPath("~/src"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

func TestPaths(t *testing.T) {
	t.Setenv("WORKBENCH_HOME", "/var/wb")

	assert.Equal(t, "/var/wb", GetWorkbenchHome())
	assert.Equal(t, "/var/wb/state.db", GetDBPath())
	assert.Equal(t, "/var/wb/settings.json", GetSettingsPath())
}
