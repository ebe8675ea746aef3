package cmd

import (
	"time"

	adaptereditor "workbench/internal/adapters/editor"
	adapterfs "workbench/internal/adapters/fs"
	adaptergit "workbench/internal/adapters/git"
	adapterhg "workbench/internal/adapters/hg"
	adapterrunner "workbench/internal/adapters/runner"
	adapterscm "workbench/internal/adapters/scm"
	adapterstorage "workbench/internal/adapters/storage"
	adaptersvn "workbench/internal/adapters/svn"
	adapterwatcher "workbench/internal/adapters/watcher"
	"workbench/internal/config"
	"workbench/internal/ports"
	"workbench/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ProjectService  *services.ProjectService
	SnapshotService *services.SnapshotService
	TreeService     *services.TreeService

	// Adapters used directly by the TUI
	EditorOpener ports.EditorOpener

	// Internal - for cleanup only
	projectRepo   ports.ProjectRepository
	watchDebounce time.Duration
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	projectRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	runner := adapterrunner.NewExecRunner()
	lister := adapterfs.NewLister()
	providers := adapterscm.NewProviders(
		adaptergit.NewStatusProvider(),
		adapterhg.NewStatusProvider(runner),
		adaptersvn.NewStatusProvider(runner),
	)

	return &Container{
		EditorOpener:    adaptereditor.NewOpener(),
		ProjectService:  services.NewProjectService(projectRepo),
		SnapshotService: services.NewSnapshotService(lister, providers),
		TreeService:     services.NewTreeService(lister),
		projectRepo:     projectRepo,
		watchDebounce:   settings.WatchDebounce(),
	}, nil
}

// NewWatcher creates a folder watcher for one TUI instance.
// The caller stops it when the TUI exits.
func (c *Container) NewWatcher() ports.FolderWatcher {
	return adapterwatcher.New(c.watchDebounce)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.projectRepo != nil {
		return c.projectRepo.Close()
	}
	return nil
}
