package domain

import (
	"strings"
	"time"
)

// DateFormat is the layout used for the Date column
const DateFormat = "2006-01-02 15:04:05"

// DirStat is the filesystem metadata of an entry that exists on disk
type DirStat struct {
	IsDir   bool
	ModTime time.Time
}

// DirEntry is one item of a directory listing
type DirEntry struct {
	IsDir   bool
	ModTime time.Time
	Name    string
}

// StatusRecord is the backend independent view of a path's SCM status
type StatusRecord interface {
	AbbreviatedState() string // Working copy state, "" when unchanged
	IsNew() bool              // Added or otherwise new in the working copy
}

// Entry is one named path inside a displayed folder.
// Stat is nil when the path is gone from disk but still known to the SCM.
// Status is nil when the SCM reports nothing for the path.
type Entry struct {
	Name   string
	Stat   *DirStat
	Status StatusRecord
}

// IsDirectory reports whether the entry is a directory on disk
func (e Entry) IsDirectory() bool {
	return e.Stat != nil && e.Stat.IsDir
}

// HasWorkingChanges reports whether the SCM shows a non-clean state
func (e Entry) HasWorkingChanges() bool {
	return e.WorkingState() != ""
}

// IsNewInWorkingCopy reports whether the SCM marks the entry as new
func (e Entry) IsNewInWorkingCopy() bool {
	if e.Status == nil {
		return false
	}
	return e.Status.IsNew()
}

// WorkingState returns the abbreviated state or "" when there is no status
func (e Entry) WorkingState() string {
	if e.Status == nil {
		return ""
	}
	return e.Status.AbbreviatedState()
}

// IgnoredByFilter is true exactly when the SCM has no status for the entry
func (e Entry) IgnoredByFilter() bool {
	return e.Status == nil
}

// DisplayDate formats the modification time, "-" when not on disk
func (e Entry) DisplayDate() string {
	if e.Stat == nil {
		return "-"
	}
	return e.Stat.ModTime.Local().Format(DateFormat)
}

// DisplayName is the name with a trailing slash for directories
func (e Entry) DisplayName() string {
	if e.IsDirectory() {
		return e.Name + "/"
	}
	return e.Name
}

// TypeLabel returns "Dir" or "File"
func (e Entry) TypeLabel() string {
	if e.IsDirectory() {
		return "Dir"
	}
	return "File"
}

// Equal reports whether two entries would render identically.
// A difference in status or stat means the row needs an update.
func (e Entry) Equal(other Entry) bool {
	if e.Name != other.Name {
		return false
	}
	if !statusEqual(e.Status, other.Status) {
		return false
	}
	return statEqual(e.Stat, other.Stat)
}

func statusEqual(a, b StatusRecord) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.AbbreviatedState() == b.AbbreviatedState() && a.IsNew() == b.IsNew()
}

func statEqual(a, b *DirStat) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsDir == b.IsDir && a.ModTime.Equal(b.ModTime)
}

// ContainsFold reports whether the entry name contains text, ignoring case
func (e Entry) ContainsFold(text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(text))
}
