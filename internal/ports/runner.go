package ports

import "context"

// CommandRunner executes external commands
type CommandRunner interface {
	// Run executes name with args in dir and returns stdout
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}
