package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Working copy state colors
const (
	ColorAdded     Color = "2"   // Green - added or new
	ColorConflict  Color = "201" // Magenta - unmerged
	ColorDeleted   Color = "1"   // Red - deleted, removed or missing
	ColorModified  Color = "3"   // Yellow - modified
	ColorUntracked Color = "8"   // Gray - untracked
)

// UI semantic colors
const (
	ColorBorder    Color = "238" // Unfocused pane border
	ColorError     Color = "196" // Bright red
	ColorFocus     Color = "99"  // Focused pane border
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "57"  // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorBranch    Color = "141" // Purple
	ColorHelpGroup Color = "141" // Purple
)
