package integration_test

import (
	"path/filepath"
	"testing"

	"workbench/test/integration/harness"
)

type projectOutput struct {
	Name string `json:"name"`
	Path string `json:"path"`
	SCM  string `json:"scm"`
}

func TestProjects(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo)
		args         func(repo *harness.TestGitRepo) []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult)
	}{
		{
			name:         "list with no projects",
			args:         func(*harness.TestGitRepo) []string { return []string{"projects", "list"} },
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Total: 0 projects")
			},
		},
		{
			name:         "add detects git and defaults the name",
			args:         func(repo *harness.TestGitRepo) []string { return []string{"projects", "add", repo.Path} },
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Added project 'repo' (git)")

				list := harness.RunCommand(t, env, "projects", "list", "--format", "json")
				harness.AssertSuccess(t, list)
				harness.AssertStdoutContains(t, list, `"scm": "git"`)
				var projects []projectOutput
				harness.AssertValidJSON(t, list, &projects)
				if len(projects) != 1 || projects[0].Name != "repo" || projects[0].SCM != "git" {
					t.Errorf("Unexpected projects: %+v", projects)
				}
			},
		},
		{
			name:         "add with explicit name",
			args:         func(repo *harness.TestGitRepo) []string { return []string{"projects", "add", repo.Path, "--name", "web"} },
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				list := harness.RunCommand(t, env, "projects", "list")
				harness.AssertStdoutContains(t, list, "web")
				harness.AssertStdoutContains(t, list, "Total: 1 projects")
			},
		},
		{
			name: "add twice fails",
			setup: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "projects", "add", repo.Path))
			},
			args:         func(repo *harness.TestGitRepo) []string { return []string{"projects", "add", repo.Path} },
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "already exists")
			},
		},
		{
			name: "add folder without scm fails",
			args: func(repo *harness.TestGitRepo) []string {
				return []string{"projects", "add", filepath.Dir(repo.Path)}
			},
			wantExitCode: 1,
		},
		{
			name:         "add unsupported scm fails",
			args:         func(repo *harness.TestGitRepo) []string { return []string{"projects", "add", repo.Path, "--scm", "cvs"} },
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unsupported scm")
			},
		},
		{
			name: "del removes the project",
			setup: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "projects", "add", repo.Path))
			},
			args:         func(*harness.TestGitRepo) []string { return []string{"projects", "del", "repo"} },
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Deleted project 'repo'")
				list := harness.RunCommand(t, env, "projects", "list")
				harness.AssertStdoutContains(t, list, "Total: 0 projects")
			},
		},
		{
			name:         "del unknown project fails",
			args:         func(*harness.TestGitRepo) []string { return []string{"projects", "del", "ghost"} },
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, repo *harness.TestGitRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			repo := harness.NewTestGitRepo(t)

			if tt.setup != nil {
				tt.setup(t, env, repo)
			}

			result := harness.RunCommand(t, env, tt.args(repo)...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.wantExitCode != 0 {
				harness.AssertStdoutEmpty(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, repo, result)
			}
		})
	}
}
