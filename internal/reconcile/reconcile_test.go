package reconcile

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
)

var (
	clean    = domain.GitFileState{Staging: domain.CodeUnmodified, Worktree: domain.CodeUnmodified}
	modified = domain.GitFileState{Staging: domain.CodeUnmodified, Worktree: domain.CodeModified}
	mtime    = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func entry(name string, status domain.StatusRecord) domain.Entry {
	return domain.Entry{Name: name, Stat: &domain.DirStat{ModTime: mtime}, Status: status}
}

func entries(names ...string) []domain.Entry {
	out := make([]domain.Entry, len(names))
	for i, n := range names {
		out[i] = entry(n, clean)
	}
	return out
}

func names(seq []domain.Entry) []string {
	out := make([]string, len(seq))
	for i, e := range seq {
		out[i] = e.Name
	}
	return out
}

func kinds(edits []Edit[domain.Entry]) []Kind {
	out := make([]Kind, len(edits))
	for i, e := range edits {
		out[i] = e.Kind
	}
	return out
}

func requireConverges(t *testing.T, old, cur []domain.Entry, edits []Edit[domain.Entry]) {
	t.Helper()
	applied, err := Apply(old, edits)
	require.NoError(t, err)
	require.Len(t, applied, len(cur))
	for i := range cur {
		assert.True(t, cur[i].Equal(applied[i]), "row %d: want %s got %s", i, cur[i].Name, applied[i].Name)
	}
}

func TestEntries_IdenticalSequencesProduceNoEdits(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	seq := entries("a", "b", "c")

	edits, err := Entries(ctx, seq, ctx, entries("a", "b", "c"))

	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestEntries_EmptyToEmpty(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	edits, err := Entries(ctx, nil, ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestEntries_PureAppend(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	old := entries("a", "b")
	cur := entries("a", "b", "c", "d")

	edits, err := Entries(ctx, old, ctx, cur)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, KindInsertRange, edits[0].Kind)
	assert.Equal(t, 2, edits[0].Position)
	assert.Equal(t, []string{"c", "d"}, names(edits[0].Items))

	inserted, removed, updated := Summary(edits)
	assert.Equal(t, 2, inserted)
	assert.Zero(t, removed)
	assert.Zero(t, updated)
	requireConverges(t, old, cur, edits)
}

func TestEntries_PureRemoval(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	old := entries("a", "b", "c", "d", "e")
	cur := entries("b", "d")

	edits, err := Entries(ctx, old, ctx, cur)

	require.NoError(t, err)
	for _, e := range edits {
		assert.Contains(t, []Kind{KindRemove, KindRemoveRange}, e.Kind)
	}
	assert.Equal(t, []Kind{KindRemove, KindRemove, KindRemoveRange}, kinds(edits))
	assert.Equal(t, 1, edits[len(edits)-1].Count)
	requireConverges(t, old, cur, edits)
}

func TestEntries_RemoveAll(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	old := entries("a", "b", "c")

	edits, err := Entries(ctx, old, ctx, nil)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, KindRemoveRange, edits[0].Kind)
	assert.Equal(t, 0, edits[0].Position)
	assert.Equal(t, 3, edits[0].Count)
	requireConverges(t, old, nil, edits)
}

func TestEntries_UpdateDetection(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	old := entries("a", "x", "z")
	cur := []domain.Entry{entry("a", clean), entry("x", modified), entry("z", clean)}

	edits, err := Entries(ctx, old, ctx, cur)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, KindUpdate, edits[0].Kind)
	assert.Equal(t, 1, edits[0].Position)
	assert.Equal(t, ".M", edits[0].Items[0].WorkingState())
	requireConverges(t, old, cur, edits)
}

func TestEntries_InterleavedChanges(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb", Folder: "src"}
	old := entries("a", "b", "d", "e")
	cur := []domain.Entry{entry("a", clean), entry("c", clean), entry("d", modified), entry("e", clean)}

	edits, err := Entries(ctx, old, ctx, cur)

	require.NoError(t, err)
	require.Len(t, edits, 3)

	// b goes, c takes its row, d' is updated in place one row further down
	assert.Equal(t, Edit[domain.Entry]{Kind: KindRemove, Position: 1}, edits[0])
	assert.Equal(t, KindInsert, edits[1].Kind)
	assert.Equal(t, 1, edits[1].Position)
	assert.Equal(t, "c", edits[1].Items[0].Name)
	assert.Equal(t, KindUpdate, edits[2].Kind)
	assert.Equal(t, 2, edits[2].Position)
	assert.Equal(t, "d", edits[2].Items[0].Name)

	applied, err := Apply(old, edits)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "e"}, names(applied))
	assert.True(t, applied[2].HasWorkingChanges())
}

func TestEntries_ContextSwitchResets(t *testing.T) {
	oldCtx := domain.ViewContext{Project: "wb", Folder: "src"}
	newCtx := domain.ViewContext{Project: "wb", Folder: "docs"}
	old := entries("a", "b", "c")
	cur := entries("a", "b", "c")

	edits, err := Entries(oldCtx, old, newCtx, cur)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, KindReset, edits[0].Kind)
	assert.Equal(t, []string{"a", "b", "c"}, names(edits[0].Items))
	requireConverges(t, old, cur, edits)
}

func TestEntries_IgnoredEntriesStillReconciled(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}
	old := entries("a")
	cur := []domain.Entry{entry("a", clean), entry("build", nil)}

	edits, err := Entries(ctx, old, ctx, cur)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.True(t, edits[0].Items[0].IgnoredByFilter())
	requireConverges(t, old, cur, edits)
}

func TestDiff_RejectsUnsortedOrDuplicateInput(t *testing.T) {
	ctx := domain.ViewContext{Project: "wb"}

	tests := []struct {
		name string
		old  []domain.Entry
		cur  []domain.Entry
	}{
		{"unsorted old", entries("b", "a"), entries("a")},
		{"duplicate old", entries("a", "a"), entries("a")},
		{"unsorted new", entries("a"), entries("c", "b")},
		{"duplicate new", entries("a"), entries("a", "b", "b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Entries(ctx, tt.old, ctx, tt.cur)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnsortedInput)
		})
	}

	_, err := Entries(ctx, nil, domain.ViewContext{Project: "other"}, entries("b", "a"))
	assert.ErrorIs(t, err, domain.ErrUnsortedInput)
}

func TestDiff_Convergence_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := make([]string, 40)
	for i := range alphabet {
		alphabet[i] = fmt.Sprintf("f%02d", i)
	}
	statuses := []domain.StatusRecord{nil, clean, modified, domain.GitFileState{Staging: domain.CodeUntracked, Worktree: domain.CodeUntracked}}

	randomSeq := func() []domain.Entry {
		var seq []domain.Entry
		for _, n := range alphabet {
			if rng.Intn(2) == 0 {
				seq = append(seq, entry(n, statuses[rng.Intn(len(statuses))]))
			}
		}
		return seq
	}

	ctx := domain.ViewContext{Project: "wb"}
	for round := 0; round < 200; round++ {
		old, cur := randomSeq(), randomSeq()

		edits, err := Entries(ctx, old, ctx, cur)
		require.NoError(t, err)
		requireConverges(t, old, cur, edits)

		// Reconciling the result against itself is a no-op
		again, err := Entries(ctx, cur, ctx, cur)
		require.NoError(t, err)
		assert.Empty(t, again)
	}
}

func TestDiff_GenericKeys(t *testing.T) {
	identity := func(s string) string { return s }
	same := func(a, b string) bool { return a == b }

	old := []string{"alpha", "beta", "delta"}
	cur := []string{"beta", "gamma"}
	edits, err := Diff(old, cur, identity, same)
	require.NoError(t, err)

	applied, err := Apply(old, edits)
	require.NoError(t, err)
	assert.Equal(t, cur, applied)
	assert.True(t, sort.StringsAreSorted(applied))
}

func TestApply_OutOfRange(t *testing.T) {
	seq := entries("a")

	tests := []struct {
		name string
		edit Edit[domain.Entry]
	}{
		{"insert past end", Edit[domain.Entry]{Kind: KindInsert, Position: 2, Items: entries("z")}},
		{"remove past end", Edit[domain.Entry]{Kind: KindRemove, Position: 1}},
		{"remove range too long", Edit[domain.Entry]{Kind: KindRemoveRange, Position: 0, Count: 2}},
		{"update past end", Edit[domain.Entry]{Kind: KindUpdate, Position: 1, Items: entries("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(seq, []Edit[domain.Entry]{tt.edit})
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	seq := entries("a", "b", "c")
	_, err := Apply(seq, []Edit[domain.Entry]{{Kind: KindRemove, Position: 0}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names(seq))
}

func TestEdit_SpanAndString(t *testing.T) {
	rr := Edit[domain.Entry]{Kind: KindRemoveRange, Position: 3, Count: 2}
	first, last := rr.Span()
	assert.Equal(t, 3, first)
	assert.Equal(t, 4, last)
	assert.Equal(t, "remove-range(3,2)", rr.String())

	ir := Edit[domain.Entry]{Kind: KindInsertRange, Position: 1, Items: entries("x", "y", "z")}
	first, last = ir.Span()
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)
	assert.Equal(t, "update(4)", Edit[domain.Entry]{Kind: KindUpdate, Position: 4}.String())
	assert.Equal(t, "reset(3)", Edit[domain.Entry]{Kind: KindReset, Items: entries("a", "b", "c")}.String())
}
