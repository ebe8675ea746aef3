package ui

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workbench/internal/config"
	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/ports"
	"workbench/internal/services"
	"workbench/internal/theme"
	"workbench/internal/viewmodel"
)

const errorClearDelay = 10 * time.Second

type uiState int

const (
	stateMain uiState = iota
	stateAddingProject
	stateConfirmingDelete
	stateFiltering
	stateHelp
)

type pane int

const (
	paneFolders pane = iota
	paneEntries
)

// Model is the root Bubble Tea model of the workbench
type Model struct {
	branch          string                 // Branch of the open project
	devMode         bool                   // Shows version info in dialogs
	dialog          *Dialog                // Active dialog, nil in the main view
	editor          string                 // Editor flag, overrides the environment
	editorOpener    ports.EditorOpener
	entries         *EntriesPane
	errorManager    *ErrorManager
	filterInput     textinput.Model
	focus           pane
	folders         *FoldersPane
	guard           viewmodel.RefreshGuard // One snapshot gather in flight
	height          int
	help            help.Model
	keys            KeyMap
	pendingDelete   string // Project awaiting delete confirmation
	projectService  *services.ProjectService
	projects        []domain.Project
	proxy           *viewmodel.FilterProxy
	refreshInterval time.Duration
	reveal          string // Folder whose ancestors expand once they are loaded
	snapshotService *services.SnapshotService
	state           uiState
	table           *viewmodel.Table
	tipIndex        int
	tree            *viewmodel.FolderTree
	treeService     *services.TreeService
	watched         string // Project the watcher follows
	watcher         ports.FolderWatcher
	width           int
}

// NewModel creates the workbench model. watcher may be nil to rely on polling only.
func NewModel(
	editor string,
	devMode bool,
	refreshInterval time.Duration,
	showIgnored bool,
	keysConfig config.KeyBindingsConfig,
	projectService *services.ProjectService,
	snapshotService *services.SnapshotService,
	treeService *services.TreeService,
	watcher ports.FolderWatcher,
	editorOpener ports.EditorOpener,
) *Model {
	table := viewmodel.NewTable()
	proxy := viewmodel.NewFilterProxy(table)
	proxy.SetShowIgnored(showIgnored)

	filterInput := textinput.New()
	filterInput.Prompt = "/ "
	filterInput.Placeholder = "filter by name"

	if refreshInterval <= 0 {
		refreshInterval = config.DefaultRefreshInterval
	}

	m := &Model{
		devMode:         devMode,
		editor:          editor,
		editorOpener:    editorOpener,
		entries:         NewEntriesPane(proxy),
		errorManager:    NewErrorManager(errorClearDelay),
		filterInput:     filterInput,
		folders:         NewFoldersPane(),
		help:            help.New(),
		keys:            NewKeyMap(keysConfig),
		projectService:  projectService,
		proxy:           proxy,
		refreshInterval: refreshInterval,
		snapshotService: snapshotService,
		state:           stateMain,
		table:           table,
		treeService:     treeService,
		watcher:         watcher,
	}
	return m
}

// Init loads the registry, restores the bookmark and starts both refresh sources
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		loadProjectsCmd(m.projectService, true),
		pollCmd(m.refreshInterval),
		waitForFolderChangeCmd(m.watcher),
	)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Refresh results arrive whatever the UI is showing
	if cmd, handled := m.updateBackground(msg); handled {
		return m, cmd
	}

	switch m.state {
	case stateMain:
		return m.updateMain(msg)
	case stateAddingProject:
		return m.updateAddingProject(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateFiltering:
		return m.updateFiltering(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m *Model) updateBackground(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return cmd, true
		}
		return nil, true

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return nil, true

	case pollTickMsg:
		m.tipIndex++
		return tea.Batch(m.requestRefresh(), m.reloadTree(), pollCmd(m.refreshInterval)), true

	case folderChangedMsg:
		var cmds []tea.Cmd
		if msg.key == m.watched {
			logging.Logger.Debug("Folder change reported", "project", msg.key)
			cmds = append(cmds, m.requestRefresh(), m.reloadTree())
		}
		cmds = append(cmds, waitForFolderChangeCmd(m.watcher))
		return tea.Batch(cmds...), true

	case snapshotMsg:
		return m.handleSnapshot(msg), true

	case subfoldersMsg:
		m.handleSubfolders(msg)
		return nil, true

	case projectsLoadedMsg:
		return m.handleProjectsLoaded(msg), true

	case projectDeletedMsg:
		if msg.err != nil {
			return m.errorManager.SetError(fmt.Errorf("failed to delete project %s: %w", msg.name, msg.err)), true
		}
		if m.table.Context().Project == msg.name {
			m.closeProject()
		}
		return loadProjectsCmd(m.projectService, false), true

	case editorClosedMsg:
		if msg.err != nil {
			return tea.Batch(m.errorManager.SetError(fmt.Errorf("editor exited: %w", msg.err)), m.requestRefresh()), true
		}
		return m.requestRefresh(), true
	}
	return nil, false
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding, m.keys.Application.Quit.Binding):
		return m, m.quit()

	case key.Matches(keyMsg, m.keys.Application.Help.Binding):
		return m, m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))

	case key.Matches(keyMsg, m.keys.Navigation.SwitchPane.Binding):
		m.switchPane()
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Up.Binding):
		if m.focus == paneFolders {
			m.folders.MoveUp()
		} else {
			m.entries.MoveUp()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Down.Binding):
		if m.focus == paneFolders {
			m.folders.MoveDown()
		} else {
			m.entries.MoveDown()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Open.Binding):
		return m, m.openSelected()

	case key.Matches(keyMsg, m.keys.Navigation.Back.Binding):
		return m, m.openParent()

	case key.Matches(keyMsg, m.keys.Navigation.Filter.Binding):
		m.state = stateFiltering
		m.filterInput.SetValue(m.proxy.FilterText())
		m.layout()
		return m, m.filterInput.Focus()

	case key.Matches(keyMsg, m.keys.Navigation.ClearFilter.Binding):
		m.setFilter("")
		return m, nil

	case key.Matches(keyMsg, m.keys.View.SortColumn.Binding):
		m.proxy.SetSortOrder(nextSortOrder(m.proxy.SortOrder()))
		m.entries.Sync()
		return m, nil

	case key.Matches(keyMsg, m.keys.View.SortReverse.Binding):
		order := m.proxy.SortOrder()
		order.Descending = !order.Descending
		m.proxy.SetSortOrder(order)
		m.entries.Sync()
		return m, nil

	case key.Matches(keyMsg, m.keys.View.ToggleIgnored.Binding):
		m.proxy.SetShowIgnored(!m.proxy.ShowIgnored())
		m.entries.Sync()
		return m, nil

	case key.Matches(keyMsg, m.keys.View.Refresh.Binding):
		return m, tea.Batch(m.requestRefresh(), m.reloadTree())

	case key.Matches(keyMsg, m.keys.View.OpenEditor.Binding):
		return m, m.openEditor()

	case key.Matches(keyMsg, m.keys.Projects.New.Binding):
		form := NewProjectForm(m.projectService, m.projects, defaultProjectPath())
		return m, m.openDialog(stateAddingProject, "Add Project", form)

	case key.Matches(keyMsg, m.keys.Projects.Delete.Binding):
		return m, m.confirmDelete()
	}

	return m, nil
}

func (m *Model) updateFiltering(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding):
			return m, m.quit()
		case key.Matches(keyMsg, m.keys.Navigation.ClearFilter.Binding):
			m.setFilter("")
			m.endFiltering()
			return m, nil
		case keyMsg.Type == tea.KeyEnter:
			m.endFiltering()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilter(m.filterInput.Value())
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	if content, ok := m.dialog.Content().(*HelpScreen); ok && content.Completed {
		m.closeDialog()
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateAddingProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	content, ok := m.dialog.Content().(*ProjectForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()

	result := content.Result()
	if result.Cancelled {
		return m, nil
	}
	if result.Error != nil {
		return m, m.errorManager.SetError(fmt.Errorf("failed to add project: %w", result.Error))
	}

	m.projects = append(m.projects, *result.Project)
	m.folders.SetProjects(m.projects)
	return m, tea.Batch(
		m.openContext(domain.ViewContext{Project: result.Project.Name}),
		loadProjectsCmd(m.projectService, false),
	)
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	content, ok := m.dialog.Content().(*ConfirmForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()

	name := m.pendingDelete
	m.pendingDelete = ""
	if !content.Confirmed || name == "" {
		return m, nil
	}
	return m, deleteProjectCmd(m.projectService, name)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.dialog != nil {
		return m.dialog.View()
	}

	leftWidth, rightWidth, bodyHeight := m.paneSizes()

	leftStyle, rightStyle := theme.FocusedPaneStyle, theme.PaneStyle
	if m.focus == paneEntries {
		leftStyle, rightStyle = theme.PaneStyle, theme.FocusedPaneStyle
	}
	left := leftStyle.
		Width(leftWidth - 2).
		Height(bodyHeight - 2).
		Render(m.folders.View(leftWidth-2, m.table.Context(), m.focus == paneFolders))
	right := rightStyle.
		Width(rightWidth - 2).
		Height(bodyHeight - 2).
		Render(m.entries.View())

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	if m.state == stateFiltering || m.proxy.FilterText() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	if err := m.errorManager.Error(); err != nil {
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(err, m.width)))
	} else if tips := m.keys.Tips(); len(tips) > 0 {
		b.WriteString(RenderTip(tips[m.tipIndex%len(tips)]))
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderTitle() string {
	title := theme.TitleStyle.Render("Workbench")
	vc := m.table.Context()
	if vc.IsZero() {
		return title
	}
	title += " " + theme.NormalStyle.Render(vc.String())
	if m.branch != "" {
		title += " " + theme.BranchStyle.Render("⎇ "+m.branch)
	}
	return title
}

func (m *Model) renderStatus() string {
	visible := m.entries.Len()
	hidden := m.table.Len() - visible
	order := m.proxy.SortOrder()
	direction := "asc"
	if order.Descending {
		direction = "desc"
	}

	parts := []string{fmt.Sprintf("%d entries", visible)}
	if hidden > 0 {
		parts = append(parts, fmt.Sprintf("%d hidden", hidden))
	}
	parts = append(parts, fmt.Sprintf("sort: %s %s", order.Column, direction))
	if m.proxy.ShowIgnored() {
		parts = append(parts, "showing ignored")
	}
	if m.guard.InFlight() {
		parts = append(parts, "refreshing")
	}
	return theme.MutedStyle.Render(strings.Join(parts, " • "))
}

// requestRefresh starts a snapshot gather of the selected folder unless one
// is already in flight, in which case the request is dropped
func (m *Model) requestRefresh() tea.Cmd {
	vc := m.table.Context()
	if vc.IsZero() {
		return nil
	}
	project := m.findProject(vc.Project)
	if project == nil {
		return nil
	}
	if !m.guard.TryBegin() {
		logging.Logger.Debug("Refresh dropped, one already in flight", "context", vc.String())
		return nil
	}
	return gatherSnapshotCmd(m.snapshotService, *project, vc.Folder, m.table.Epoch())
}

func (m *Model) handleSnapshot(msg snapshotMsg) tea.Cmd {
	m.guard.End()

	if msg.err != nil {
		return m.errorManager.SetError(fmt.Errorf("failed to refresh %s: %w", msg.snapshot.Context, msg.err))
	}

	if _, err := m.table.Apply(msg.snapshot); err != nil {
		if errors.Is(err, domain.ErrStaleSnapshot) {
			logging.Logger.Debug("Discarded stale snapshot", "error", err)
			// The context moved while gathering, refresh it now rather than on the next tick
			if msg.snapshot.Epoch != m.table.Epoch() {
				return m.requestRefresh()
			}
			return nil
		}
		return m.errorManager.SetError(fmt.Errorf("failed to apply snapshot: %w", err))
	}

	m.branch = msg.branch
	m.entries.Sync()
	return nil
}

func (m *Model) handleSubfolders(msg subfoldersMsg) {
	if m.tree == nil || m.tree.Project() != msg.project {
		return
	}
	// Parents first so that children of newly listed folders can be found
	for _, p := range sortedPaths(msg.children) {
		if _, err := m.tree.SetChildren(p, msg.children[p]); err != nil {
			logging.Logger.Warn("Failed to update folder tree", "folder", p, "error", err)
		}
	}
	m.revealFolder()
	m.folders.Refresh()
}

func (m *Model) handleProjectsLoaded(msg projectsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		return m.errorManager.SetError(fmt.Errorf("failed to load projects: %w", msg.err))
	}

	m.projects = msg.projects
	m.folders.SetProjects(m.projects)

	if current := m.table.Context(); !current.IsZero() && m.findProject(current.Project) == nil {
		m.closeProject()
	}

	if msg.bookmark != nil && !msg.bookmark.IsZero() {
		logging.Logger.Info("Restoring bookmark", "context", msg.bookmark.String())
		return m.openContext(*msg.bookmark)
	}
	return nil
}

// openContext shows vc in the table and the tree, and remembers it as the bookmark
func (m *Model) openContext(vc domain.ViewContext) tea.Cmd {
	project := m.findProject(vc.Project)
	if project == nil {
		return nil
	}

	var cmds []tea.Cmd
	if m.tree == nil || m.tree.Project() != project.Name {
		m.tree = viewmodel.NewFolderTree(project.Name)
		m.folders.SetTree(m.tree)
		m.branch = ""
		m.watch(*project)
	}

	if vc == m.table.Context() {
		return nil
	}

	m.reveal = vc.Folder
	m.revealFolder()
	m.folders.Select(vc)
	cmds = append(cmds, listSubfoldersCmd(m.treeService, *project, m.pathsToLoad(vc.Folder)))

	m.table.SwitchContext(vc)
	m.entries.ResetSelection()
	if err := m.projectService.SaveBookmark(context.Background(), vc); err != nil {
		logging.Logger.Warn("Failed to save bookmark", "context", vc.String(), "error", err)
	}

	cmds = append(cmds, m.requestRefresh())
	return tea.Batch(cmds...)
}

// openSelected opens the row under the cursor of the focused pane
func (m *Model) openSelected() tea.Cmd {
	if m.focus == paneFolders {
		row, ok := m.folders.Selected()
		if !ok {
			return nil
		}
		vc := row.Context()
		// A second enter on the open folder folds it
		if row.node != nil && vc == m.table.Context() && vc.Folder != "" {
			m.tree.Toggle(vc.Folder)
			m.folders.Refresh()
			return nil
		}
		if row.node != nil && vc.Folder != "" {
			m.tree.Expand(vc.Folder)
		}
		return m.openContext(vc)
	}

	entry, ok := m.entries.Selected()
	if !ok || !entry.IsDirectory() {
		return nil
	}
	return m.openContext(m.table.Context().Child(entry.Name))
}

func (m *Model) openParent() tea.Cmd {
	vc := m.table.Context()
	if vc.IsZero() || vc.Folder == "" {
		return nil
	}
	return m.openContext(domain.ViewContext{Project: vc.Project, Folder: parentFolder(vc.Folder)})
}

func (m *Model) openEditor() tea.Cmd {
	vc := m.table.Context()
	project := m.findProject(vc.Project)
	if project == nil || m.editorOpener == nil {
		return nil
	}

	target := filepath.Join(project.Path, filepath.FromSlash(vc.Folder))
	if m.focus == paneEntries {
		if entry, ok := m.entries.Selected(); ok && entry.Stat != nil {
			target = filepath.Join(target, entry.Name)
		}
	}

	cmd, err := m.editorOpener.Command(target, m.editor)
	if err != nil {
		return m.errorManager.SetError(fmt.Errorf("failed to open editor: %w", err))
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorClosedMsg{err: err}
	})
}

func (m *Model) confirmDelete() tea.Cmd {
	name := m.table.Context().Project
	if m.focus == paneFolders {
		if row, ok := m.folders.Selected(); ok {
			name = row.project.Name
		}
	}
	if name == "" {
		return nil
	}

	m.pendingDelete = name
	form := NewConfirmForm(
		fmt.Sprintf("Remove project %s?", name),
		"The working copy stays on disk, only the registry entry is removed.",
	)
	return m.openDialog(stateConfirmingDelete, "Remove Project", form)
}

func (m *Model) closeProject() {
	if m.watcher != nil && m.watched != "" {
		m.watcher.Unwatch(m.watched)
	}
	m.watched = ""
	m.tree = nil
	m.branch = ""
	m.reveal = ""
	m.folders.SetTree(nil)
	m.table.Clear()
	m.entries.ResetSelection()
	m.entries.Sync()
}

func (m *Model) watch(project domain.Project) {
	if m.watcher == nil {
		return
	}
	if m.watched != "" {
		m.watcher.Unwatch(m.watched)
	}
	m.watched = project.Name
	if err := m.watcher.Watch(project.Name, project.Path); err != nil {
		// Polling still refreshes the view
		logging.Logger.Warn("Failed to watch project", "project", project.Name, "error", err)
	}
}

func (m *Model) reloadTree() tea.Cmd {
	if m.tree == nil {
		return nil
	}
	project := m.findProject(m.tree.Project())
	if project == nil {
		return nil
	}
	return listSubfoldersCmd(m.treeService, *project, m.tree.ExpandedPaths())
}

// pathsToLoad lists the expanded folders plus the ancestors of folder
func (m *Model) pathsToLoad(folder string) []string {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, p := range ancestors(folder) {
		add(p)
	}
	for _, p := range m.tree.ExpandedPaths() {
		add(p)
	}
	return paths
}

// revealFolder expands the loaded ancestors of the folder being opened.
// It stops once the folder itself is in the tree.
func (m *Model) revealFolder() {
	if m.tree == nil || m.reveal == "" {
		return
	}
	for _, p := range ancestors(m.reveal) {
		if p != m.reveal {
			m.tree.Expand(p)
		}
	}
	m.folders.Refresh()
	if m.tree.Find(m.reveal) != nil {
		m.folders.Select(domain.ViewContext{Project: m.tree.Project(), Folder: m.reveal})
		m.reveal = ""
	}
}

func (m *Model) setFilter(text string) {
	m.filterInput.SetValue(text)
	m.proxy.SetFilterText(text)
	m.entries.Sync()
}

func (m *Model) endFiltering() {
	m.filterInput.Blur()
	m.state = stateMain
	m.layout()
}

func (m *Model) switchPane() {
	if m.focus == paneFolders {
		m.focus = paneEntries
		m.entries.Focus()
		return
	}
	m.focus = paneFolders
	m.entries.Blur()
}

func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, content, m.devMode)
	m.state = state
	initCmd := m.dialog.Init()
	_, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.state = stateMain
}

func (m *Model) quit() tea.Cmd {
	if m.watcher != nil && m.watched != "" {
		m.watcher.Unwatch(m.watched)
		m.watched = ""
	}
	return tea.Quit
}

func (m *Model) findProject(name string) *domain.Project {
	for i := range m.projects {
		if m.projects[i].Name == name {
			return &m.projects[i]
		}
	}
	return nil
}

// paneSizes returns the outer width of both panes and their common height
func (m *Model) paneSizes() (left, right, height int) {
	width := max(m.width, 40)
	left = max(width/3, 24)
	right = max(width-left, 20)

	// Title, status, tip/error and help lines
	reserved := 4
	if m.state == stateFiltering || m.proxy.FilterText() != "" {
		reserved++
	}
	height = max(m.height-reserved, 5)
	return left, right, height
}

func (m *Model) layout() {
	_, right, height := m.paneSizes()
	m.folders.SetHeight(height - 2)
	// The table header takes two lines
	m.entries.SetSize(right-2, height-4)
	m.help.Width = m.width
	m.filterInput.Width = max(m.width-4, 10)
}

// parentFolder returns the folder containing folder, "" for top level folders
func parentFolder(folder string) string {
	parent := path.Dir(folder)
	if parent == "." || parent == "/" {
		return ""
	}
	return parent
}

// ancestors returns "" and every prefix of folder down to folder itself
func ancestors(folder string) []string {
	paths := []string{""}
	if folder == "" {
		return paths
	}
	parts := strings.Split(folder, "/")
	for i := range parts {
		paths = append(paths, strings.Join(parts[:i+1], "/"))
	}
	return paths
}

// sortedPaths orders folder paths so that parents come before children
func sortedPaths(children map[string][]string) []string {
	paths := make([]string, 0, len(children))
	for p := range children {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool {
		di, dj := folderDepth(paths[i]), folderDepth(paths[j])
		if di != dj {
			return di < dj
		}
		return paths[i] < paths[j]
	})
	return paths
}

func folderDepth(p string) int {
	if p == "" {
		return 0
	}
	return strings.Count(p, "/") + 1
}
