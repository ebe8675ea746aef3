package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"workbench/internal/domain"
	"workbench/internal/logging"
)

// StatusProvider implements ports.StatusProvider using go-git
type StatusProvider struct{}

// NewStatusProvider creates a new go-git backed StatusProvider
func NewStatusProvider() *StatusProvider {
	return &StatusProvider{}
}

// StatusOf returns every tracked path from the index as clean, overlaid with
// the worktree status. Ignored files are not reported.
func (p *StatusProvider) StatusOf(ctx context.Context, root string) (map[string]domain.StatusRecord, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository %s: %w", root, err)
	}

	statuses := make(map[string]domain.StatusRecord)

	idx, err := repo.Storer.Index()
	if err != nil {
		logging.Logger.Warn("Failed to read git index", "root", root, "error", err)
	} else {
		for _, e := range idx.Entries {
			statuses[e.Name] = domain.GitFileState{Staging: domain.CodeUnmodified, Worktree: domain.CodeUnmodified}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree %s: %w", root, err)
	}

	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get status of %s: %w", root, err)
	}

	for path, fs := range st {
		statuses[path] = domain.GitFileState{
			Staging:  domain.FileCode(fs.Staging),
			Worktree: domain.FileCode(fs.Worktree),
		}
	}

	logging.Logger.Debug("Git status collected", "root", root, "paths", len(statuses), "changed", len(st))
	return statuses, nil
}

// BranchName returns the short branch name of HEAD, the abbreviated
// commit when detached, or "" when HEAD cannot be resolved
func (p *StatusProvider) BranchName(ctx context.Context, root string) string {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return ""
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			// Unborn branch, HEAD still names it
			if ref, err := repo.Storer.Reference(plumbing.HEAD); err == nil && ref.Type() == plumbing.SymbolicReference {
				return ref.Target().Short()
			}
		}
		return ""
	}

	if head.Name().IsBranch() {
		return head.Name().Short()
	}
	return head.Hash().String()[:7]
}
