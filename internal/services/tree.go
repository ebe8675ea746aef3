package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"workbench/internal/domain"
	"workbench/internal/ports"
)

// TreeService lists the subfolders shown in the folder tree
type TreeService struct {
	lister ports.DirectoryLister
}

// NewTreeService creates a new TreeService
func NewTreeService(lister ports.DirectoryLister) *TreeService {
	return &TreeService{lister: lister}
}

// Subfolders returns the sorted names of the folders directly below folder,
// leaving out SCM metadata folders
func (s *TreeService) Subfolders(ctx context.Context, project domain.Project, folder string) ([]string, error) {
	entries, err := s.lister.List(ctx, filepath.Join(project.Path, filepath.FromSlash(folder)))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", domain.ViewContext{Project: project.Name, Folder: folder}, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir || isMetadataDir(e.Name) {
			continue
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names, nil
}

func isMetadataDir(name string) bool {
	for _, scm := range domain.AllSCMTypes {
		if name == scm.MetadataDir() {
			return true
		}
	}
	return false
}
