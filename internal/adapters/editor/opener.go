package editor

import (
	"fmt"
	"os"
	"os/exec"

	"workbench/internal/logging"
)

// Opener implements ports.EditorOpener
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Command builds the editor command for path. The caller runs it, which
// lets a terminal UI hand the terminal over while the editor is open.
// Priority: cliEditor, $WORKBENCH_EDITOR, $VISUAL, $EDITOR, platform defaults
func (o *Opener) Command(path string, cliEditor string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := findEditor(path, cliEditor)
	if editor == "" {
		return nil, fmt.Errorf("no suitable editor found. Set --editor flag, $WORKBENCH_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)
	return exec.Command(editor, args...), nil
}

func findEditor(path string, cliEditor string) (string, []string) {
	for _, editor := range []string{
		cliEditor,
		os.Getenv("WORKBENCH_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	} {
		if editor != "" {
			return editor, []string{path}
		}
	}

	return findPlatformEditor(path)
}
