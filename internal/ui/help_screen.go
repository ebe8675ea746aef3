package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"workbench/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // Viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderBinding(keys.Navigation.Up.Binding)
	content += renderBinding(keys.Navigation.Down.Binding)
	content += renderBinding(keys.Navigation.Open.Binding)
	content += renderBinding(keys.Navigation.Back.Binding)
	content += renderBinding(keys.Navigation.SwitchPane.Binding)
	content += renderBinding(keys.Navigation.Filter.Binding)
	content += renderBinding(keys.Navigation.ClearFilter.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Entries") + "\n"
	content += renderBinding(keys.View.SortColumn.Binding)
	content += renderBinding(keys.View.SortReverse.Binding)
	content += renderBinding(keys.View.ToggleIgnored.Binding)
	content += renderBinding(keys.View.Refresh.Binding)
	content += renderBinding(keys.View.OpenEditor.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Projects") + "\n"
	content += renderBinding(keys.Projects.New.Binding)
	content += renderBinding(keys.Projects.Delete.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("State column (read-only)") + "\n"
	content += renderShortcut("M / .M / M.", "modified (git: staged / worktree)")
	content += renderShortcut("A", "added")
	content += renderShortcut("D / R / !", "deleted, removed or missing")
	content += renderShortcut("??", "untracked")
	content += renderShortcut("(empty)", "clean")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-7, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
