package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Main UI styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelected).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Pane styles
var (
	FocusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorFocus)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StateStyle returns the style for an abbreviated working copy state.
// Two letter git states are colored by their first non-'.' code.
func StateStyle(state string) lipgloss.Style {
	code := strings.TrimLeft(state, ".")
	if code == "" {
		return NormalStyle
	}

	var color Color
	switch code[0] {
	case 'A':
		color = ColorAdded
	case 'D', 'R', '!':
		color = ColorDeleted
	case 'M':
		color = ColorModified
	case 'U', 'C':
		color = ColorConflict
	case '?':
		color = ColorUntracked
	default:
		return NormalStyle
	}
	return lipgloss.NewStyle().Foreground(color)
}
