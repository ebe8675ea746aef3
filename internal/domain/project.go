package domain

import (
	"fmt"
	"path"
	"strings"
)

// SCMType identifies the version control backend of a project
type SCMType string

const (
	SCMGit SCMType = "git"
	SCMHg  SCMType = "hg"
	SCMSvn SCMType = "svn"
)

// AllSCMTypes lists the supported backends
var AllSCMTypes = []SCMType{SCMGit, SCMHg, SCMSvn}

// ParseSCMType validates a backend name
func ParseSCMType(s string) (SCMType, error) {
	t := SCMType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllSCMTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSCM, s)
}

// MetadataDir returns the backend's metadata folder name (e.g. ".git")
func (t SCMType) MetadataDir() string {
	return "." + string(t)
}

// Project is a registered working copy
type Project struct {
	Name    string
	Path    string // Absolute path of the working copy root
	SCMType SCMType
}

// Bookmark remembers the last selected project folder
type Bookmark struct {
	Folder  string
	Project string
}

// ViewContext identifies the folder a displayed sequence belongs to.
// Folder is slash separated and relative to the project root, "" for the root.
type ViewContext struct {
	Folder  string
	Project string
}

// IsZero reports whether no context is selected
func (c ViewContext) IsZero() bool {
	return c.Project == "" && c.Folder == ""
}

// Child returns the context of a subfolder
func (c ViewContext) Child(name string) ViewContext {
	return ViewContext{Project: c.Project, Folder: JoinFolder(c.Folder, name)}
}

// String renders the context as project:folder
func (c ViewContext) String() string {
	if c.Folder == "" {
		return c.Project + ":/"
	}
	return c.Project + ":" + c.Folder
}

// JoinFolder joins slash separated path elements, treating "" as the root
func JoinFolder(folder, name string) string {
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

// Snapshot is one freshly observed, name sorted listing of a folder
type Snapshot struct {
	Context ViewContext
	Entries []Entry
	Epoch   uint64 // Table epoch the snapshot was requested for
}
