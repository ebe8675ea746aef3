package domain

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sortedNames(entries []Entry, col Column) []string {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareByColumn(col, sorted[i], sorted[j]) < 0
	})
	names := make([]string, len(sorted))
	for i, e := range sorted {
		names[i] = e.Name
	}
	return names
}

func TestCompareByColumn_State(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		fileAt("clean.go", now, GitFileState{CodeUnmodified, CodeUnmodified}),
		fileAt("b-mod.go", now, GitFileState{CodeUnmodified, CodeModified}),
		fileAt("a-mod.go", now, GitFileState{CodeUnmodified, CodeModified}),
		fileAt("new.go", now, GitFileState{CodeUntracked, CodeUntracked}),
		fileAt("added.go", now, GitFileState{CodeAdded, CodeUnmodified}),
		fileAt("staged.go", now, GitFileState{CodeModified, CodeUnmodified}),
		fileAt("nostatus", now, nil),
	}

	// Descending by state string: "M." > "A." > "??" > ".M" > ""
	assert.Equal(t,
		[]string{"staged.go", "added.go", "new.go", "a-mod.go", "b-mod.go", "clean.go", "nostatus"},
		sortedNames(entries, ColumnState))
}

func TestCompareByColumn_StateNewFlagTieBreak(t *testing.T) {
	now := time.Now()
	// Same abbreviated state, one reported as new
	entries := []Entry{
		fileAt("z-new", now, stubStatus{state: "A", isNew: true}),
		fileAt("b-new", now, stubStatus{state: "A", isNew: true}),
		fileAt("m-old", now, stubStatus{state: "A", isNew: false}),
		fileAt("a-old", now, stubStatus{state: "A", isNew: false}),
	}
	assert.Equal(t, []string{"a-old", "m-old", "b-new", "z-new"}, sortedNames(entries, ColumnState))
}

func TestCompareByColumn_DateAndType(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Name: "late", Stat: &DirStat{ModTime: base.Add(time.Hour)}},
		{Name: "dir", Stat: &DirStat{IsDir: true, ModTime: base}},
		{Name: "early", Stat: &DirStat{ModTime: base}},
		{Name: "missing"},
	}

	assert.Equal(t, []string{"missing", "dir", "early", "late"}, sortedNames(entries, ColumnDate))
	assert.Equal(t, []string{"early", "late", "missing", "dir"}, sortedNames(entries, ColumnType))
	assert.Equal(t, []string{"dir", "early", "late", "missing"}, sortedNames(entries, ColumnName))
}

func TestCompareByColumn_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		CompareByColumn(Column(42), Entry{}, Entry{})
	})
	assert.Equal(t, "Column(42)", Column(42).String())
}

type stubStatus struct {
	state string
	isNew bool
}

func (s stubStatus) AbbreviatedState() string { return s.state }
func (s stubStatus) IsNew() bool              { return s.isNew }

func TestParseColumn(t *testing.T) {
	for _, c := range AllColumns {
		got, err := ParseColumn(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseColumn(" date ")
	assert.NoError(t, err)
	assert.Equal(t, ColumnDate, got)

	_, err = ParseColumn("size")
	assert.Error(t, err)
}
