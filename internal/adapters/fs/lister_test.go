package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := NewLister().List(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]bool{}
	for _, e := range entries {
		byName[e.Name] = e.IsDir
		assert.False(t, e.ModTime.IsZero())
	}
	assert.Equal(t, map[string]bool{"a.txt": false, "sub": true}, byName)
}

func TestList_MissingFolder(t *testing.T) {
	entries, err := NewLister().List(context.Background(), filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewLister().List(context.Background(), file)
	assert.Error(t, err)
}

func TestList_SymlinkFollowsTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), nil, 0644))
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "linkdir")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "f.txt"), filepath.Join(dir, "linkfile")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))

	entries, err := NewLister().List(context.Background(), dir)
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, e := range entries {
		byName[e.Name] = e.IsDir
	}
	assert.Equal(t, map[string]bool{
		"dangling": false,
		"f.txt":    false,
		"linkdir":  true,
		"linkfile": false,
		"real":     true,
	}, byName)
}
