package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own WORKBENCH_HOME.
type TestEnvironment struct {
	WorkbenchHome string
	extraEnv      map[string]string
	tb            testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp WORKBENCH_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		WorkbenchHome: tb.TempDir(),
		extraEnv:      make(map[string]string),
		tb:            tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It drops inherited WORKBENCH_* variables and sets:
//   - WORKBENCH_HOME to the temp directory
//   - WORKBENCH_DEBUG to empty string (disables debug logging)
//   - WORKBENCH_EDITOR to "true" (no-op command)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "WORKBENCH_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"WORKBENCH_HOME="+e.WorkbenchHome,
		"WORKBENCH_DEBUG=",
		"WORKBENCH_EDITOR=true",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.WorkbenchHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.WorkbenchHome, "settings.json")
}

// WriteSettings replaces the settings file with raw JSON.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(json), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
