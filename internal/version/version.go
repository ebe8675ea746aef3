package version

import "fmt"

// Tagline is the application's tagline used in help text and dialogs
const Tagline = "Working copies at a glance"

// Build information injected at build time via ldflags
// Example: -ldflags="-X workbench/internal/version.Version=v1.0.0"
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("workbench %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
