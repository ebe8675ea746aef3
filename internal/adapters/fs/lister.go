package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"workbench/internal/domain"
	"workbench/internal/logging"
)

// Lister implements ports.DirectoryLister on the local filesystem
type Lister struct{}

// NewLister creates a new Lister
func NewLister() *Lister {
	return &Lister{}
}

// List returns the direct children of path.
// A missing folder yields no entries and entries that vanish while being
// stat'ed are skipped.
func (l *Lister) List(ctx context.Context, path string) ([]domain.DirEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	entries := make([]domain.DirEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := de.Info()
		if err != nil {
			logging.Logger.Debug("Skipping unreadable entry", "path", path, "name", de.Name(), "error", err)
			continue
		}
		isDir := info.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			// Links count as what they point to; dangling links stay files
			if target, err := os.Stat(filepath.Join(path, de.Name())); err == nil {
				isDir = target.IsDir()
			}
		}
		entries = append(entries, domain.DirEntry{
			IsDir:   isDir,
			ModTime: info.ModTime(),
			Name:    de.Name(),
		})
	}

	return entries, nil
}
