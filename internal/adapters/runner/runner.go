package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"workbench/internal/logging"
)

var (
	safeWord     = regexp.MustCompile(`^[a-z][a-z-]*$`)
	credentialRe = regexp.MustCompile(`https?://[^\s@]+@`)
	secretRe     = regexp.MustCompile(`(?i)(token|secret|password|passwd|bearer)=[^\s]+`)
)

// ExecRunner implements ports.CommandRunner with os/exec
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and returns stdout.
// The error carries stderr with credentials scrubbed.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running command", "name", name, "op", sanitizeArgs(args), "dir", dir)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%s %s: %s", name, sanitizeArgs(args), redactTokens(msg))
	}

	return stdout.Bytes(), nil
}

// sanitizeArgs keeps at most the first two subcommand words, stopping at
// the first token that could be a path or URL
func sanitizeArgs(args []string) string {
	if len(args) == 0 {
		return "<no-args>"
	}
	safe := make([]string, 0, 2)
	for _, a := range args {
		if !safeWord.MatchString(a) {
			break
		}
		safe = append(safe, a)
		if len(safe) == 2 {
			break
		}
	}
	if len(safe) == 0 {
		return "<redacted>"
	}
	return strings.Join(safe, " ")
}

func redactTokens(s string) string {
	s = credentialRe.ReplaceAllString(s, "https://<redacted>@")
	return secretRe.ReplaceAllString(s, "$1=<redacted>")
}
