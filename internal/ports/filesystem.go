package ports

import (
	"context"

	"workbench/internal/domain"
)

// DirectoryLister lists the direct children of a folder on disk
type DirectoryLister interface {
	// List returns the children of path. A folder that does not exist yields no entries.
	List(ctx context.Context, path string) ([]domain.DirEntry, error)
}
