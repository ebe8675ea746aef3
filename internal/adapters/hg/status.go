package hg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/ports"
)

const hgBin = "hg"

// StatusProvider implements ports.StatusProvider by running hg
type StatusProvider struct {
	runner ports.CommandRunner
}

// NewStatusProvider creates a new hg StatusProvider
func NewStatusProvider(runner ports.CommandRunner) *StatusProvider {
	return &StatusProvider{runner: runner}
}

// StatusOf runs "hg status -A" in root. Ignored paths are left out.
func (p *StatusProvider) StatusOf(ctx context.Context, root string) (map[string]domain.StatusRecord, error) {
	out, err := p.runner.Run(ctx, root, hgBin, "status", "-A")
	if err != nil {
		return nil, fmt.Errorf("failed to get hg status: %w", err)
	}
	return parseStatus(out), nil
}

// BranchName runs "hg branch"
func (p *StatusProvider) BranchName(ctx context.Context, root string) string {
	out, err := p.runner.Run(ctx, root, hgBin, "branch")
	if err != nil {
		logging.Logger.Debug("Failed to get hg branch", "root", root, "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

// parseStatus reads lines of the form "<code> <path>"
func parseStatus(out []byte) map[string]domain.StatusRecord {
	statuses := make(map[string]domain.StatusRecord)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) < 3 || line[1] != ' ' {
			continue
		}
		code := domain.FileCode(line[0])
		if code == domain.CodeIgnored {
			continue
		}
		path := filepath.ToSlash(line[2:])
		statuses[path] = domain.HgFileState{Code: code}
	}

	return statuses
}
