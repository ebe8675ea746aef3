package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestProjects_AddGetList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Add(ctx, domain.Project{Name: "zeta", Path: "/src/zeta", SCMType: domain.SCMHg}))
	require.NoError(t, repo.Add(ctx, domain.Project{Name: "alpha", Path: "/src/alpha", SCMType: domain.SCMGit}))

	got, err := repo.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, domain.Project{Name: "alpha", Path: "/src/alpha", SCMType: domain.SCMGit}, *got)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "alpha", projects[0].Name)
	assert.Equal(t, "zeta", projects[1].Name)
}

func TestProjects_AddDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	require.NoError(t, repo.Add(ctx, domain.Project{Name: "wb", Path: "/src/wb", SCMType: domain.SCMGit}))

	err := repo.Add(ctx, domain.Project{Name: "wb", Path: "/other", SCMType: domain.SCMGit})
	assert.ErrorIs(t, err, domain.ErrProjectExists)

	err = repo.Add(ctx, domain.Project{Name: "other", Path: "/src/wb", SCMType: domain.SCMGit})
	assert.ErrorIs(t, err, domain.ErrProjectExists)
}

func TestProjects_GetMissing(t *testing.T) {
	_, err := newTestRepository(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjects_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	require.NoError(t, repo.Add(ctx, domain.Project{Name: "wb", Path: "/src/wb", SCMType: domain.SCMSvn}))
	require.NoError(t, repo.SaveBookmark(ctx, domain.Bookmark{Project: "wb", Folder: "docs"}))

	require.NoError(t, repo.Delete(ctx, "wb"))

	_, err := repo.Get(ctx, "wb")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	bookmark, err := repo.LoadBookmark(ctx)
	require.NoError(t, err)
	assert.Nil(t, bookmark)

	assert.ErrorIs(t, repo.Delete(ctx, "wb"), domain.ErrProjectNotFound)
}

func TestBookmark_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	bookmark, err := repo.LoadBookmark(ctx)
	require.NoError(t, err)
	assert.Nil(t, bookmark)

	require.NoError(t, repo.SaveBookmark(ctx, domain.Bookmark{Project: "wb", Folder: "src"}))
	require.NoError(t, repo.SaveBookmark(ctx, domain.Bookmark{Project: "wb", Folder: "src/ui"}))

	bookmark, err = repo.LoadBookmark(ctx)
	require.NoError(t, err)
	require.NotNil(t, bookmark)
	assert.Equal(t, domain.Bookmark{Project: "wb", Folder: "src/ui"}, *bookmark)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 2 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns other errors at once", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		err := withRetry(func() error { return sqlite3.Error{Code: sqlite3.ErrLocked} }, 2)
		assert.ErrorContains(t, err, "after 2 retries")
	})
}
