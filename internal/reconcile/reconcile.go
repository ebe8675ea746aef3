// Package reconcile computes positional edit scripts between two name sorted
// sequences, so a view can be updated in place instead of rebuilt.
package reconcile

import (
	"fmt"

	"workbench/internal/domain"
)

// Diff walks old and cur with one cursor each and returns the edits that
// turn old into cur. Both inputs must be strictly ascending by key.
//
// Matching keys produce an update when equal reports a difference, keys
// only in cur produce inserts and keys only in old produce removals. Once
// one side is exhausted the rest of the other side is emitted as a single
// range edit.
func Diff[T any](old, cur []T, key func(T) string, equal func(a, b T) bool) ([]Edit[T], error) {
	if err := CheckSorted(old, key); err != nil {
		return nil, fmt.Errorf("old sequence: %w", err)
	}
	if err := CheckSorted(cur, key); err != nil {
		return nil, fmt.Errorf("new sequence: %w", err)
	}

	var edits []Edit[T]
	i, j := 0, 0
	pos := 0 // row in the partially edited sequence

	for i < len(old) && j < len(cur) {
		oldKey, newKey := key(old[i]), key(cur[j])

		switch {
		case oldKey == newKey:
			if !equal(old[i], cur[j]) {
				edits = append(edits, Edit[T]{Kind: KindUpdate, Position: pos, Items: []T{cur[j]}})
			}
			i++
			j++
			pos++

		case newKey < oldKey:
			edits = append(edits, Edit[T]{Kind: KindInsert, Position: pos, Items: []T{cur[j]}})
			j++
			pos++

		default:
			edits = append(edits, Edit[T]{Kind: KindRemove, Position: pos})
			i++
		}
	}

	if i < len(old) {
		edits = append(edits, Edit[T]{Kind: KindRemoveRange, Position: pos, Count: len(old) - i})
	}
	if j < len(cur) {
		edits = append(edits, Edit[T]{Kind: KindInsertRange, Position: pos, Items: append([]T(nil), cur[j:]...)})
	}

	return edits, nil
}

// ReplaceAll returns the single reset edit used when the context changed
func ReplaceAll[T any](seq []T) []Edit[T] {
	return []Edit[T]{{Kind: KindReset, Items: append([]T(nil), seq...)}}
}

// CheckSorted verifies that keys are strictly ascending, which also rules out duplicates
func CheckSorted[T any](seq []T, key func(T) string) error {
	for k := 1; k < len(seq); k++ {
		prev, cur := key(seq[k-1]), key(seq[k])
		if prev >= cur {
			return fmt.Errorf("%w: %q at %d follows %q", domain.ErrUnsortedInput, cur, k, prev)
		}
	}
	return nil
}

func entryName(e domain.Entry) string { return e.Name }

func entryEqual(a, b domain.Entry) bool { return a.Equal(b) }

// Entries reconciles a displayed folder listing against a new snapshot.
// A different context means a different folder, so no incremental diff is tried.
func Entries(oldCtx domain.ViewContext, old []domain.Entry, newCtx domain.ViewContext, cur []domain.Entry) ([]Edit[domain.Entry], error) {
	if oldCtx != newCtx {
		if err := CheckSorted(cur, entryName); err != nil {
			return nil, fmt.Errorf("new sequence: %w", err)
		}
		return ReplaceAll(cur), nil
	}
	return Diff(old, cur, entryName, entryEqual)
}
