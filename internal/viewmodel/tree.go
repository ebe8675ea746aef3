package viewmodel

import (
	"strings"

	"workbench/internal/domain"
	"workbench/internal/reconcile"
)

// FolderNode is one folder of a project tree
type FolderNode struct {
	Children []*FolderNode
	Expanded bool
	Loaded   bool   // Children were listed at least once
	Name     string // Last path element, the project name for the root
	Path     string // Slash separated path from the project root, "" for the root
}

// FlatNode is a visible tree row
type FlatNode struct {
	Depth int
	Node  *FolderNode
}

// FolderTree mirrors the folder hierarchy of one project
type FolderTree struct {
	project string
	root    *FolderNode
}

// NewFolderTree creates a tree holding only the project root
func NewFolderTree(project string) *FolderTree {
	return &FolderTree{
		project: project,
		root:    &FolderNode{Name: project, Expanded: true},
	}
}

// Project returns the project the tree belongs to
func (t *FolderTree) Project() string {
	return t.project
}

// Root returns the node of the project root
func (t *FolderTree) Root() *FolderNode {
	return t.root
}

// Find returns the node at path, or nil when it was not loaded yet
func (t *FolderTree) Find(path string) *FolderNode {
	node := t.root
	if path == "" {
		return node
	}
	for _, part := range strings.Split(path, "/") {
		var next *FolderNode
		for _, c := range node.Children {
			if c.Name == part {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

func folderName(n *FolderNode) string { return n.Name }

func sameFolder(a, b *FolderNode) bool { return true }

// SetChildren reconciles the children of path against a sorted list of
// subfolder names. Surviving children keep their own subtree and expansion.
func (t *FolderTree) SetChildren(path string, names []string) ([]reconcile.Edit[*FolderNode], error) {
	node := t.Find(path)
	if node == nil {
		return nil, nil
	}

	cur := make([]*FolderNode, len(names))
	for i, name := range names {
		cur[i] = &FolderNode{Name: name, Path: domain.JoinFolder(path, name)}
	}

	edits, err := reconcile.Diff(node.Children, cur, folderName, sameFolder)
	if err != nil {
		return nil, err
	}

	children, err := reconcile.Apply(node.Children, edits)
	if err != nil {
		return nil, err
	}
	node.Children = children
	node.Loaded = true
	return edits, nil
}

// Expand marks the node at path as expanded and reports whether it exists
func (t *FolderTree) Expand(path string) bool {
	node := t.Find(path)
	if node == nil {
		return false
	}
	node.Expanded = true
	return true
}

// Collapse hides the children of the node at path
func (t *FolderTree) Collapse(path string) {
	if node := t.Find(path); node != nil && node != t.root {
		node.Expanded = false
	}
}

// Toggle flips the expansion of the node at path and returns the new state
func (t *FolderTree) Toggle(path string) bool {
	node := t.Find(path)
	if node == nil {
		return false
	}
	if node == t.root {
		return true
	}
	node.Expanded = !node.Expanded
	return node.Expanded
}

// ExpandedPaths returns every expanded and loaded folder, parents first
func (t *FolderTree) ExpandedPaths() []string {
	var paths []string
	var walk func(n *FolderNode)
	walk = func(n *FolderNode) {
		if !n.Expanded {
			return
		}
		paths = append(paths, n.Path)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.root)
	return paths
}

// Flatten returns the visible rows in display order
func (t *FolderTree) Flatten() []FlatNode {
	var rows []FlatNode
	var walk func(n *FolderNode, depth int)
	walk = func(n *FolderNode, depth int) {
		rows = append(rows, FlatNode{Depth: depth, Node: n})
		if !n.Expanded {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t.root, 0)
	return rows
}
