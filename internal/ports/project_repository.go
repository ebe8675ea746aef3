package ports

import (
	"context"

	"workbench/internal/domain"
)

// ProjectReader reads registered projects
type ProjectReader interface {
	Get(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter registers and removes projects
type ProjectWriter interface {
	Add(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, name string) error
}

// BookmarkStore persists the last selected project folder
type BookmarkStore interface {
	LoadBookmark(ctx context.Context) (*domain.Bookmark, error)
	SaveBookmark(ctx context.Context, bookmark domain.Bookmark) error
}

// ProjectRepository is the composite interface
type ProjectRepository interface {
	BookmarkStore
	ProjectReader
	ProjectWriter
	Close() error
}
