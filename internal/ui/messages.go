package ui

import (
	"workbench/internal/domain"
)

// Refresh pipeline messages
type (
	// pollTickMsg re-arms the periodic refresh of the open folder
	pollTickMsg struct{}

	// snapshotMsg carries a gathered snapshot back to the update loop
	snapshotMsg struct {
		branch   string
		err      error
		snapshot domain.Snapshot
	}

	// folderChangedMsg is sent when the watcher reports a change under a project
	folderChangedMsg struct {
		key string
	}

	// subfoldersMsg carries the subfolders of tree nodes
	subfoldersMsg struct {
		children map[string][]string // Folder path -> sorted subfolder names
		project  string
	}
)

// Registry messages
type (
	projectsLoadedMsg struct {
		bookmark *domain.ViewContext // Set on the first load only
		err      error
		projects []domain.Project
	}

	projectDeletedMsg struct {
		err  error
		name string
	}
)

// editorClosedMsg is sent when the external editor exits
type editorClosedMsg struct {
	err error
}
