package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
	portsmocks "workbench/internal/ports/mocks"
)

func TestSubfolders(t *testing.T) {
	project := domain.Project{Name: "wb", Path: "/work/wb", SCMType: domain.SCMGit}
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().List(mock.Anything, filepath.Join("/work/wb", "src")).Return([]domain.DirEntry{
		{Name: "ui", IsDir: true},
		{Name: ".git", IsDir: true},
		{Name: "main.go"},
		{Name: "adapters", IsDir: true},
		{Name: ".hg", IsDir: true},
	}, nil)

	folders, err := NewTreeService(lister).Subfolders(context.Background(), project, "src")

	require.NoError(t, err)
	assert.Equal(t, []string{"adapters", "ui"}, folders)
}

func TestSubfolders_Error(t *testing.T) {
	project := domain.Project{Name: "wb", Path: "/work/wb", SCMType: domain.SCMGit}
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().List(mock.Anything, "/work/wb").Return(nil, errors.New("denied"))

	_, err := NewTreeService(lister).Subfolders(context.Background(), project, "")
	assert.ErrorContains(t, err, "wb:/")
}
