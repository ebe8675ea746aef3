package ui

import (
	"fmt"

	"workbench/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Working copies at a glance",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader displays the app name with optional version info (in dev mode)
// and the tagline. A non-empty subtitle is rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("Workbench")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader creates a header for dialogs with a form title.
// Only the Dialog wrapper calls it.
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle) + "\n"
}
