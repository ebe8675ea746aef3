package editor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEditor_Priority(t *testing.T) {
	t.Setenv("WORKBENCH_EDITOR", "wbedit")
	t.Setenv("VISUAL", "visual")
	t.Setenv("EDITOR", "plain")

	editor, args := findEditor("/tmp/x", "cli")
	assert.Equal(t, "cli", editor)
	assert.Equal(t, []string{"/tmp/x"}, args)

	editor, _ = findEditor("/tmp/x", "")
	assert.Equal(t, "wbedit", editor)

	t.Setenv("WORKBENCH_EDITOR", "")
	editor, _ = findEditor("/tmp/x", "")
	assert.Equal(t, "visual", editor)

	t.Setenv("VISUAL", "")
	editor, _ = findEditor("/tmp/x", "")
	assert.Equal(t, "plain", editor)
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()

	cmd, err := NewOpener().Command(dir, "true")
	require.NoError(t, err)
	assert.Equal(t, []string{"true", dir}, cmd.Args)

	_, err = NewOpener().Command(filepath.Join(dir, "missing"), "true")
	assert.ErrorContains(t, err, "path does not exist")

	_, err = NewOpener().Command("", "true")
	assert.Error(t, err)
}
