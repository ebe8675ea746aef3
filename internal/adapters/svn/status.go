package svn

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/ports"
)

const (
	svnBin = "svn"

	// Width of the status flag columns before the revision fields
	flagColumns = 8
)

// working revision, last committed revision, author, path
var verboseFields = regexp.MustCompile(`^(\d+|-)\s+(\d+|\?)\s+(\S+)\s+(.+)$`)

// StatusProvider implements ports.StatusProvider by running svn
type StatusProvider struct {
	runner ports.CommandRunner
}

// NewStatusProvider creates a new svn StatusProvider
func NewStatusProvider(runner ports.CommandRunner) *StatusProvider {
	return &StatusProvider{runner: runner}
}

// StatusOf runs "svn status -v" in root so unchanged files are listed too
func (p *StatusProvider) StatusOf(ctx context.Context, root string) (map[string]domain.StatusRecord, error) {
	out, err := p.runner.Run(ctx, root, svnBin, "status", "-v", "--non-interactive")
	if err != nil {
		return nil, fmt.Errorf("failed to get svn status: %w", err)
	}
	return parseStatus(out), nil
}

// BranchName returns the last element of the working copy URL,
// e.g. "trunk" or the branch folder name
func (p *StatusProvider) BranchName(ctx context.Context, root string) string {
	out, err := p.runner.Run(ctx, root, svnBin, "info", "--show-item", "url", "--non-interactive")
	if err != nil {
		logging.Logger.Debug("Failed to get svn url", "root", root, "error", err)
		return ""
	}
	url := strings.TrimRight(strings.TrimSpace(string(out)), "/")
	if url == "" {
		return ""
	}
	return path.Base(url)
}

func parseStatus(out []byte) map[string]domain.StatusRecord {
	statuses := make(map[string]domain.StatusRecord)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) <= flagColumns || strings.HasPrefix(line, "Performing status") {
			continue
		}
		// Tree conflict details are indented continuation lines
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}

		item, props := domain.FileCode(line[0]), domain.FileCode(line[1])
		if item == domain.CodeIgnored {
			continue
		}

		rest := strings.TrimSpace(line[flagColumns:])
		name := rest
		if m := verboseFields.FindStringSubmatch(rest); m != nil && item != domain.CodeUntracked {
			name = m[4]
		}
		if name == "" || name == "." {
			continue
		}

		statuses[filepath.ToSlash(name)] = domain.SvnFileState{Item: item, Props: props}
	}

	return statuses
}
