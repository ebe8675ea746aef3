package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/ports"
)

// ProjectService manages the project registry and the saved bookmark
type ProjectService struct {
	repo ports.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo ports.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// AddProjectParams contains parameters for registering a project
type AddProjectParams struct {
	Name    string // Defaults to the folder name
	Path    string
	SCMType string // Detected from the metadata folder when empty
}

// Add validates and registers a working copy
func (s *ProjectService) Add(ctx context.Context, params AddProjectParams) (*domain.Project, error) {
	path := strings.TrimSpace(params.Path)
	if path == "" {
		return nil, fmt.Errorf("project path is required")
	}
	path, err := filepath.Abs(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("project path %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", path)
	}

	var scm domain.SCMType
	if strings.TrimSpace(params.SCMType) == "" {
		scm, err = DetectSCM(path)
	} else {
		scm, err = domain.ParseSCMType(params.SCMType)
	}
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = filepath.Base(path)
	}
	if strings.ContainsAny(name, "/\\:") {
		return nil, fmt.Errorf("invalid project name %q", name)
	}

	project := domain.Project{Name: name, Path: path, SCMType: scm}
	if err := s.repo.Add(ctx, project); err != nil {
		return nil, err
	}

	logging.Logger.Info("Project added", "name", name, "path", path, "scm", scm)
	return &project, nil
}

// Get returns a registered project
func (s *ProjectService) Get(ctx context.Context, name string) (*domain.Project, error) {
	return s.repo.Get(ctx, name)
}

// List returns all projects ordered by name
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Delete unregisters a project. The working copy is left untouched.
func (s *ProjectService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	logging.Logger.Info("Project deleted", "name", name)
	return nil
}

// SaveBookmark remembers the selected folder
func (s *ProjectService) SaveBookmark(ctx context.Context, vc domain.ViewContext) error {
	if vc.Project == "" {
		return nil
	}
	return s.repo.SaveBookmark(ctx, domain.Bookmark{Project: vc.Project, Folder: vc.Folder})
}

// RestoreBookmark returns the saved context, or the zero context when
// nothing was saved or the project is gone
func (s *ProjectService) RestoreBookmark(ctx context.Context) domain.ViewContext {
	bookmark, err := s.repo.LoadBookmark(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load bookmark", "error", err)
		return domain.ViewContext{}
	}
	if bookmark == nil {
		return domain.ViewContext{}
	}

	if _, err := s.repo.Get(ctx, bookmark.Project); err != nil {
		if !errors.Is(err, domain.ErrProjectNotFound) {
			logging.Logger.Warn("Failed to check bookmarked project", "project", bookmark.Project, "error", err)
		}
		return domain.ViewContext{}
	}

	return domain.ViewContext{Project: bookmark.Project, Folder: bookmark.Folder}
}

// DetectSCM returns the backend whose metadata folder exists in path
func DetectSCM(path string) (domain.SCMType, error) {
	for _, scm := range domain.AllSCMTypes {
		info, err := os.Stat(filepath.Join(path, scm.MetadataDir()))
		if err == nil && info.IsDir() {
			return scm, nil
		}
	}
	return "", fmt.Errorf("%w: no .git, .hg or .svn folder in %s", domain.ErrUnsupportedSCM, path)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
