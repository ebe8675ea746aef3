package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func initRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)

	writeFile(t, root, "clean.txt", "clean\n")
	writeFile(t, root, "changed.txt", "before\n")
	writeFile(t, root, "src/main.go", "package main\n")

	wt, err := repo.Worktree()
	require.NoError(t, err)
	for _, p := range []string{"clean.txt", "changed.txt", "src/main.go"} {
		_, err := wt.Add(p)
		require.NoError(t, err)
	}
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return root, repo
}

func TestStatusOf(t *testing.T) {
	root, repo := initRepo(t)

	writeFile(t, root, "changed.txt", "after\n")
	writeFile(t, root, "untracked.txt", "new\n")
	writeFile(t, root, "staged.txt", "staged\n")
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("staged.txt")
	require.NoError(t, err)

	statuses, err := NewStatusProvider().StatusOf(context.Background(), root)
	require.NoError(t, err)

	tests := []struct {
		path  string
		state string
		isNew bool
	}{
		{"clean.txt", "", false},
		{"src/main.go", "", false},
		{"changed.txt", ".M", false},
		{"untracked.txt", "??", true},
		{"staged.txt", "A.", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			st, ok := statuses[tt.path]
			require.True(t, ok, "missing status for %s", tt.path)
			assert.IsType(t, domain.GitFileState{}, st)
			assert.Equal(t, tt.state, st.AbbreviatedState())
			assert.Equal(t, tt.isNew, st.IsNew())
		})
	}
}

func TestStatusOf_DeletedFileStillReported(t *testing.T) {
	root, _ := initRepo(t)
	require.NoError(t, os.Remove(filepath.Join(root, "clean.txt")))

	statuses, err := NewStatusProvider().StatusOf(context.Background(), root)
	require.NoError(t, err)

	st, ok := statuses["clean.txt"]
	require.True(t, ok)
	assert.Equal(t, ".D", st.AbbreviatedState())
}

func TestStatusOf_NotARepository(t *testing.T) {
	_, err := NewStatusProvider().StatusOf(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestBranchName(t *testing.T) {
	root, _ := initRepo(t)
	assert.Equal(t, "master", NewStatusProvider().BranchName(context.Background(), root))

	assert.Empty(t, NewStatusProvider().BranchName(context.Background(), t.TempDir()))
}

func TestBranchName_UnbornBranch(t *testing.T) {
	root := t.TempDir()
	_, err := gogit.PlainInit(root, false)
	require.NoError(t, err)

	assert.Equal(t, "master", NewStatusProvider().BranchName(context.Background(), root))
}
