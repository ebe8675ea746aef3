package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitRepo is a git working copy with one commit on "main".
type TestGitRepo struct {
	Path string
	tb   testing.TB
}

// NewTestGitRepo creates a working copy holding a committed README.md
// and a committed src/main.go.
func NewTestGitRepo(tb testing.TB) *TestGitRepo {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "repo")
	if err := os.MkdirAll(filepath.Join(path, "src"), 0755); err != nil {
		tb.Fatalf("Failed to create repo directory: %v", err)
	}

	runGitCommand(tb, path, "init")
	runGitCommand(tb, path, "config", "user.email", "test@example.com")
	runGitCommand(tb, path, "config", "user.name", "Test User")

	repo := &TestGitRepo{Path: path, tb: tb}
	repo.WriteFile("README.md", "# Test Repo\n")
	repo.WriteFile("src/main.go", "package main\n")
	runGitCommand(tb, path, "add", ".")
	runGitCommand(tb, path, "commit", "-m", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, path, "branch", "-M", "main")

	return repo
}

// WriteFile writes content to a path relative to the working copy.
func (r *TestGitRepo) WriteFile(rel, content string) {
	r.tb.Helper()
	full := filepath.Join(r.Path, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		r.tb.Fatalf("Failed to create %s: %v", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", rel, err)
	}
}

// Git runs a git command inside the working copy.
func (r *TestGitRepo) Git(args ...string) {
	r.tb.Helper()
	runGitCommand(r.tb, r.Path, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
