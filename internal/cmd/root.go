package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"workbench/internal/config"
	"workbench/internal/logging"
	"workbench/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the workbench TUI (default)" default:"1"`
	Projects ProjectsCmd `cmd:"projects" help:"Manage registered projects (list, add, del)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`
	Status   StatusCmd   `cmd:"status" help:"Print the entries of a project folder"`
	Ver      VersionCmd  `cmd:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("WORKBENCH_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("WORKBENCH_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (hg, svn, editors) inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("WORKBENCH_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("WORKBENCH_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("WORKBENCH_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container is created after logging so GORM's logger has a target
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	Editor          string `help:"Editor to open entries in (overrides $WORKBENCH_EDITOR, $VISUAL, $EDITOR)"`
	RefreshInterval int    `help:"Seconds between refreshes of the open folder (0 = settings or default)" default:"0"`
	ShowIgnored     bool   `help:"List entries the SCM reports nothing for"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)

	runID := uuid.New().String()
	logging.Logger.Info("Starting workbench TUI", "run_id", runID)

	model, cleanup := NewTUIModel(cli.Container, cli.settings, r.Editor, r.Dev, r.ShowIgnored, r.interval(cli.settings))
	defer cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Workbench TUI exited", "run_id", runID)
	return nil
}

func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if r.Editor == "" {
		if _, hasEnv := os.LookupEnv("WORKBENCH_EDITOR"); !hasEnv {
			r.Editor = settings.Editor
		}
	}
	if !r.ShowIgnored {
		r.ShowIgnored = settings.ShowIgnoredEntries()
	}
}

func (r *RunCmd) interval(settings *config.Settings) time.Duration {
	if r.RefreshInterval > 0 {
		return time.Duration(r.RefreshInterval) * time.Second
	}
	return settings.RefreshInterval()
}

// NewTUIModel builds a workbench model with its own folder watcher.
// The returned cleanup stops the watcher.
func NewTUIModel(container *Container, settings *config.Settings, editor string, devMode, showIgnored bool, refreshInterval time.Duration) (*ui.Model, func()) {
	var keys config.KeyBindingsConfig
	if settings != nil {
		keys = settings.Keys
	}
	if err := keys.Validate(ui.GetValidKeyNames()); err != nil {
		logging.Logger.Warn("Ignoring invalid key bindings", "error", err)
		keys = nil
	}

	watcher := container.NewWatcher()
	model := ui.NewModel(
		editor,
		devMode,
		refreshInterval,
		showIgnored,
		keys,
		container.ProjectService,
		container.SnapshotService,
		container.TreeService,
		watcher,
		container.EditorOpener,
	)
	return model, watcher.Stop
}
