package integration_test

import (
	"testing"

	"workbench/test/integration/harness"
)

var workbenchSettingKeys = []string{
	"debug",
	"editor",
	"keys",
	"max_log_files",
	"refresh_interval_seconds",
	"show_ignored",
	"ssh_host",
	"ssh_port",
	"watch_debounce_ms",
}

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "table lists every option under WORKBENCH_HOME",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.SettingsPath())
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "configure workbench")
				for _, key := range workbenchSettingKeys {
					harness.AssertStdoutContains(t, result, key)
				}
			},
		},
		{
			name: "table format explicit shows defaults",
			args: []string{"settings", "meta", "--format", "table"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "23235")
				harness.AssertStdoutContains(t, result, "localhost")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "settings_file", env.SettingsPath())

				var output struct {
					Format map[string]any `json:"format"`
				}
				harness.AssertValidJSON(t, result, &output)
				for _, key := range workbenchSettingKeys {
					if _, ok := output.Format[key]; !ok {
						t.Errorf("Expected %q in the example settings", key)
					}
				}
				if port, ok := output.Format["ssh_port"].(float64); !ok || port != 23235 {
					t.Errorf("Expected ssh_port 23235, got %v", output.Format["ssh_port"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, env, result)
		})
	}
}
