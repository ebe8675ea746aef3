package ui

import (
	"fmt"
	"strings"

	"workbench/internal/domain"
	"workbench/internal/theme"
	"workbench/internal/viewmodel"
)

// folderRow is one line of the folders pane: a project, or a folder of the
// open project's tree
type folderRow struct {
	depth   int
	node    *viewmodel.FolderNode // nil for closed projects
	project domain.Project
}

// Context returns the view context the row opens
func (r folderRow) Context() domain.ViewContext {
	vc := domain.ViewContext{Project: r.project.Name}
	if r.node != nil {
		vc.Folder = r.node.Path
	}
	return vc
}

// FoldersPane lists the registered projects with the folder tree of the open one
type FoldersPane struct {
	cursor   int
	height   int
	offset   int // First visible row
	projects []domain.Project
	rows     []folderRow
	tree     *viewmodel.FolderTree
}

// NewFoldersPane creates an empty pane
func NewFoldersPane() *FoldersPane {
	return &FoldersPane{height: 10}
}

// SetProjects replaces the project list
func (p *FoldersPane) SetProjects(projects []domain.Project) {
	p.projects = projects
	p.rebuild()
}

// SetTree shows tree under its project, nil to close it
func (p *FoldersPane) SetTree(tree *viewmodel.FolderTree) {
	p.tree = tree
	p.rebuild()
}

// Refresh rebuilds the rows after the tree changed
func (p *FoldersPane) Refresh() {
	p.rebuild()
}

// SetHeight sets the number of visible rows
func (p *FoldersPane) SetHeight(height int) {
	p.height = max(height, 1)
	p.scroll()
}

// Select moves the cursor to the row of vc if it is visible
func (p *FoldersPane) Select(vc domain.ViewContext) bool {
	for i, r := range p.rows {
		if r.Context() == vc {
			p.cursor = i
			p.scroll()
			return true
		}
	}
	return false
}

// Selected returns the row under the cursor
func (p *FoldersPane) Selected() (folderRow, bool) {
	if p.cursor < 0 || p.cursor >= len(p.rows) {
		return folderRow{}, false
	}
	return p.rows[p.cursor], true
}

// MoveUp moves the cursor one row up
func (p *FoldersPane) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
		p.scroll()
	}
}

// MoveDown moves the cursor one row down
func (p *FoldersPane) MoveDown() {
	if p.cursor < len(p.rows)-1 {
		p.cursor++
		p.scroll()
	}
}

// View renders the visible rows. current marks the folder the table shows.
func (p *FoldersPane) View(width int, current domain.ViewContext, focused bool) string {
	if len(p.rows) == 0 {
		return theme.MutedStyle.Render("no projects, press n to add one")
	}

	end := min(p.offset+p.height, len(p.rows))
	lines := make([]string, 0, end-p.offset)
	for i := p.offset; i < end; i++ {
		line := truncate(renderFolderRow(p.rows[i]), width)
		switch {
		case i == p.cursor && focused:
			line = theme.SelectedStyle.Render(line)
		case p.rows[i].Context() == current:
			line = theme.TitleStyle.Render(line)
		default:
			line = theme.NormalStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// rebuild lays out the rows keeping the cursor on the same row when it survives
func (p *FoldersPane) rebuild() {
	var keep domain.ViewContext
	hadSelection := false
	if r, ok := p.Selected(); ok {
		keep, hadSelection = r.Context(), true
	}

	p.rows = p.rows[:0]
	for _, project := range p.projects {
		if p.tree == nil || p.tree.Project() != project.Name {
			p.rows = append(p.rows, folderRow{project: project})
			continue
		}
		for _, flat := range p.tree.Flatten() {
			p.rows = append(p.rows, folderRow{depth: flat.Depth, node: flat.Node, project: project})
		}
	}

	if hadSelection && p.Select(keep) {
		return
	}
	p.cursor = min(p.cursor, len(p.rows)-1)
	p.cursor = max(p.cursor, 0)
	p.scroll()
}

func (p *FoldersPane) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
	p.offset = max(min(p.offset, len(p.rows)-p.height), 0)
}

func renderFolderRow(r folderRow) string {
	indent := strings.Repeat("  ", r.depth)
	if r.node == nil {
		return fmt.Sprintf("▸ %s [%s]", r.project.Name, r.project.SCMType)
	}
	marker := "▸"
	if r.node.Expanded {
		marker = "▾"
	}
	if r.node.Loaded && len(r.node.Children) == 0 {
		marker = " "
	}
	if r.depth == 0 {
		return fmt.Sprintf("%s %s [%s]", marker, r.project.Name, r.project.SCMType)
	}
	return fmt.Sprintf("%s%s %s", indent, marker, r.node.Name)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
