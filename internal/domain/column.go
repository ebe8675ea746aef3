package domain

import (
	"fmt"
	"strings"
	"time"
)

// Column identifies a column of the entries table
type Column int

const (
	ColumnState Column = iota
	ColumnName
	ColumnDate
	ColumnType
)

// AllColumns lists the table columns in display order
var AllColumns = []Column{ColumnState, ColumnName, ColumnDate, ColumnType}

// String returns the column title
func (c Column) String() string {
	switch c {
	case ColumnState:
		return "State"
	case ColumnName:
		return "Name"
	case ColumnDate:
		return "Date"
	case ColumnType:
		return "Type"
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// ParseColumn looks a column up by its case insensitive title
func ParseColumn(name string) (Column, error) {
	for _, c := range AllColumns {
		if strings.EqualFold(c.String(), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q", name)
}

// CompareByColumn orders two entries for the given sort column.
// Returns a negative number when a sorts before b, positive when after, 0 when equal.
//
// The State column sorts by working state descending, then new entries
// after existing ones, then by name.
func CompareByColumn(col Column, a, b Entry) int {
	switch col {
	case ColumnName:
		return compareStrings(a.Name, b.Name)

	case ColumnState:
		if sa, sb := a.WorkingState(), b.WorkingState(); sa != sb {
			return -compareStrings(sa, sb)
		}
		if na, nb := a.IsNewInWorkingCopy(), b.IsNewInWorkingCopy(); na != nb {
			if !na {
				return -1
			}
			return 1
		}
		return compareStrings(a.Name, b.Name)

	case ColumnDate:
		ta, tb := modTime(a), modTime(b)
		if !ta.Equal(tb) {
			if ta.Before(tb) {
				return -1
			}
			return 1
		}
		return compareStrings(a.Name, b.Name)

	case ColumnType:
		if da, db := a.IsDirectory(), b.IsDirectory(); da != db {
			if !da {
				return -1
			}
			return 1
		}
		return compareStrings(a.Name, b.Name)
	}

	panic(fmt.Sprintf("unknown column %d", int(col)))
}

// modTime returns the zero time for entries missing from disk
func modTime(e Entry) time.Time {
	if e.Stat == nil {
		return time.Time{}
	}
	return e.Stat.ModTime
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
