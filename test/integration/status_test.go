package integration_test

import (
	"testing"

	"workbench/test/integration/harness"
)

type statusOutput struct {
	Branch  string `json:"branch"`
	Entries []struct {
		IsNew bool   `json:"is_new"`
		Name  string `json:"name"`
		State string `json:"state"`
		Type  string `json:"type"`
	} `json:"entries"`
}

// newStatusRepo registers a git working copy with one modified and one untracked file
func newStatusRepo(t *testing.T, env *harness.TestEnvironment) *harness.TestGitRepo {
	t.Helper()

	repo := harness.NewTestGitRepo(t)
	repo.WriteFile("README.md", "# Changed\n")
	repo.WriteFile("notes.txt", "todo\n")
	harness.AssertSuccess(t, harness.RunCommand(t, env, "projects", "add", repo.Path))
	return repo
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "root shows changed entries and branch",
			args:         []string{"status", "repo"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "repo:/ [main]")
				harness.AssertStdoutContains(t, result, "README.md")
				harness.AssertStdoutContains(t, result, ".M")
				harness.AssertStdoutContains(t, result, "notes.txt")
				harness.AssertStdoutContains(t, result, "??")
				harness.AssertStdoutNotContains(t, result, "src/")
			},
		},
		{
			name:         "show ignored lists folders without status",
			args:         []string{"status", "repo", "--show-ignored"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "src/")
			},
		},
		{
			name:         "subfolder",
			args:         []string{"status", "repo", "src"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "repo:src")
				harness.AssertStdoutContains(t, result, "main.go")
				harness.AssertStdoutNotContains(t, result, "README.md")
			},
		},
		{
			name:         "filter",
			args:         []string{"status", "repo", "--filter", "NOTES"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "notes.txt")
				harness.AssertStdoutNotContains(t, result, "README.md")
			},
		},
		{
			name:         "json sorted by state",
			args:         []string{"status", "repo", "--format", "json", "--sort", "state"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "project", "repo")
				harness.AssertJSONContains(t, result, "branch", "main")
				harness.AssertJSONContains(t, result, "folder", "")

				var out statusOutput
				harness.AssertValidJSON(t, result, &out)
				if out.Branch != "main" {
					t.Errorf("Expected branch main, got %q", out.Branch)
				}
				if len(out.Entries) != 2 {
					t.Fatalf("Expected 2 entries, got %+v", out.Entries)
				}
				if out.Entries[0].Name != "notes.txt" || !out.Entries[0].IsNew {
					t.Errorf("Expected untracked notes.txt first, got %+v", out.Entries[0])
				}
				if out.Entries[1].Name != "README.md" || out.Entries[1].State != ".M" {
					t.Errorf("Expected modified README.md second, got %+v", out.Entries[1])
				}
			},
		},
		{
			name:         "unknown project fails",
			args:         []string{"status", "ghost"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertExitCode(t, result, 1)
				harness.AssertStderrContains(t, result, "not found")
				harness.AssertStdoutEmpty(t, result)
			},
		},
		{
			name:         "invalid sort column fails",
			args:         []string{"status", "repo", "--sort", "size"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			newStatusRepo(t, env)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
				harness.AssertStderrEmpty(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "workbench dev")
}
