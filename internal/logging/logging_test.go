package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		stamp := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestInitialize_DiscardWhenNotDebug(t *testing.T) {
	t.Setenv("WORKBENCH_DEBUG", "")
	t.Setenv("WORKBENCH_DEBUG_FILE", "")

	path, err := Initialize(false, "", 1000)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv("WORKBENCH_DEBUG", "1")
	t.Setenv("WORKBENCH_DEBUG_FILE", "")
	file := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, file, 1000)
	require.NoError(t, err)
	assert.Equal(t, file, path)

	Logger.Info("hello")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
