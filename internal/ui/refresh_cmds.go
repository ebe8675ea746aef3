package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/ports"
	"workbench/internal/services"
)

// snapshotTimeout bounds one gather of listing and status
const snapshotTimeout = 10 * time.Second

// pollCmd waits one refresh interval then sends pollTickMsg
func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// gatherSnapshotCmd builds the snapshot of a folder off the update loop.
// The result is applied by the update loop, which owns the table.
func gatherSnapshotCmd(snapshotService *services.SnapshotService, project domain.Project, folder string, epoch uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		snapshot, err := snapshotService.Gather(ctx, project, folder, epoch)
		if err != nil {
			logging.Logger.Warn("Failed to gather snapshot",
				"project", project.Name,
				"folder", folder,
				"error", err)
			return snapshotMsg{err: err, snapshot: snapshot}
		}

		return snapshotMsg{
			branch:   snapshotService.BranchName(ctx, project),
			snapshot: snapshot,
		}
	}
}

// listSubfoldersCmd lists the subfolders of each path for the folder tree
func listSubfoldersCmd(treeService *services.TreeService, project domain.Project, paths []string) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		children := make(map[string][]string, len(paths))
		for _, p := range paths {
			names, err := treeService.Subfolders(ctx, project, p)
			if err != nil {
				logging.Logger.Warn("Failed to list subfolders", "project", project.Name, "folder", p, "error", err)
				continue
			}
			children[p] = names
		}
		return subfoldersMsg{children: children, project: project.Name}
	}
}

// waitForFolderChangeCmd blocks until the watcher reports a change.
// It returns nil once the watcher is stopped.
func waitForFolderChangeCmd(watcher ports.FolderWatcher) tea.Cmd {
	if watcher == nil {
		return nil
	}
	return func() tea.Msg {
		key, ok := <-watcher.Events()
		if !ok {
			return nil
		}
		return folderChangedMsg{key: key}
	}
}

// loadProjectsCmd reads the registry. withBookmark also restores the saved position.
func loadProjectsCmd(projectService *services.ProjectService, withBookmark bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		projects, err := projectService.List(ctx)
		msg := projectsLoadedMsg{err: err, projects: projects}
		if err == nil && withBookmark {
			vc := projectService.RestoreBookmark(ctx)
			msg.bookmark = &vc
		}
		return msg
	}
}

func deleteProjectCmd(projectService *services.ProjectService, name string) tea.Cmd {
	return func() tea.Msg {
		return projectDeletedMsg{err: projectService.Delete(context.Background(), name), name: name}
	}
}
