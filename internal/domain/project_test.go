package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSCMType(t *testing.T) {
	for _, in := range []string{"git", "GIT", " hg ", "svn"} {
		_, err := ParseSCMType(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseSCMType("cvs")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSCM)
}

func TestViewContext(t *testing.T) {
	root := ViewContext{Project: "wb"}
	assert.False(t, root.IsZero())
	assert.True(t, ViewContext{}.IsZero())
	assert.Equal(t, "wb:/", root.String())

	child := root.Child("src").Child("ui")
	assert.Equal(t, "src/ui", child.Folder)
	assert.Equal(t, "wb:src/ui", child.String())
	assert.Equal(t, ".git", SCMGit.MetadataDir())
}
