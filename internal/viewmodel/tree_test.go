package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
	"workbench/internal/reconcile"
)

func flatPaths(tree *FolderTree) []string {
	var out []string
	for _, row := range tree.Flatten() {
		out = append(out, row.Node.Path)
	}
	return out
}

func TestFolderTree_SetChildrenAndFlatten(t *testing.T) {
	tree := NewFolderTree("wb")

	_, err := tree.SetChildren("", []string{"docs", "src"})
	require.NoError(t, err)
	_, err = tree.SetChildren("src", []string{"adapters", "ui"})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "docs", "src"}, flatPaths(tree))

	require.True(t, tree.Expand("src"))
	assert.Equal(t, []string{"", "docs", "src", "src/adapters", "src/ui"}, flatPaths(tree))

	rows := tree.Flatten()
	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, "wb", rows[0].Node.Name)
	assert.Equal(t, 2, rows[3].Depth)
	assert.Equal(t, []string{"", "src"}, tree.ExpandedPaths())
}

func TestFolderTree_ReconcileKeepsSubtrees(t *testing.T) {
	tree := NewFolderTree("wb")
	_, err := tree.SetChildren("", []string{"docs", "src"})
	require.NoError(t, err)
	_, err = tree.SetChildren("src", []string{"ui"})
	require.NoError(t, err)
	tree.Expand("src")
	src := tree.Find("src")

	edits, err := tree.SetChildren("", []string{"build", "src"})
	require.NoError(t, err)

	require.Len(t, edits, 2)
	assert.Equal(t, reconcile.KindInsert, edits[0].Kind)
	assert.Equal(t, reconcile.KindRemove, edits[1].Kind)

	assert.Same(t, src, tree.Find("src"), "surviving node is reused")
	assert.True(t, tree.Find("src").Expanded)
	assert.Equal(t, []string{"", "build", "src", "src/ui"}, flatPaths(tree))
	assert.Nil(t, tree.Find("docs"))
}

func TestFolderTree_ToggleAndCollapse(t *testing.T) {
	tree := NewFolderTree("wb")
	_, err := tree.SetChildren("", []string{"src"})
	require.NoError(t, err)

	assert.True(t, tree.Toggle("src"))
	assert.False(t, tree.Toggle("src"))
	assert.True(t, tree.Toggle(""), "root stays expanded")

	tree.Expand("src")
	tree.Collapse("src")
	assert.False(t, tree.Find("src").Expanded)

	tree.Collapse("")
	assert.True(t, tree.Root().Expanded)

	assert.False(t, tree.Expand("missing"))
	assert.False(t, tree.Toggle("missing"))
}

func TestFolderTree_SetChildrenUnknownOrUnsorted(t *testing.T) {
	tree := NewFolderTree("wb")

	edits, err := tree.SetChildren("nope", []string{"a"})
	assert.NoError(t, err)
	assert.Nil(t, edits)

	_, err = tree.SetChildren("", []string{"b", "a"})
	assert.ErrorIs(t, err, domain.ErrUnsortedInput)
}
