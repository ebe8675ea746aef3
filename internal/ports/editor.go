package ports

import "os/exec"

// EditorOpener builds the command that opens a path in an external editor
type EditorOpener interface {
	// Command returns the editor command for path.
	// cliEditor is the editor specified via CLI flag (takes precedence)
	Command(path string, cliEditor string) (*exec.Cmd, error)
}
