package ports

import (
	"context"

	"workbench/internal/domain"
)

// StatusProvider queries the SCM status of a working copy
type StatusProvider interface {
	// StatusOf returns the status of every path the backend knows about,
	// keyed by slash separated paths relative to root
	StatusOf(ctx context.Context, root string) (map[string]domain.StatusRecord, error)

	// BranchName returns the current branch, "" when unknown
	BranchName(ctx context.Context, root string) string
}

// StatusProviderFactory returns the provider for a backend
type StatusProviderFactory interface {
	ProviderFor(scm domain.SCMType) (StatusProvider, error)
}
