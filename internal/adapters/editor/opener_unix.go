//go:build !windows

package editor

import (
	"os"
	"os/exec"
)

var defaultEditors = []string{
	"code",
	"cursor",
	"zed",
	"nano",
	"vi",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, []string{path}
		}
	}

	// Fallback: a shell started in the folder
	shell := "/bin/sh"
	if s := os.Getenv("SHELL"); s != "" {
		shell = s
	}
	return shell, []string{"-c", "cd \"$0\" && exec \"${SHELL:-/bin/sh}\"", path}
}
