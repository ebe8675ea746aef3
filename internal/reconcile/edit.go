package reconcile

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an edit addresses a row the sequence does not have
var ErrOutOfRange = errors.New("edit position out of range")

// Kind is the type of a single edit
type Kind int

const (
	KindReset       Kind = iota // Replace everything with Items
	KindInsert                  // Insert Items[0] at Position
	KindInsertRange             // Insert Items at Position
	KindRemove                  // Remove the row at Position
	KindRemoveRange             // Remove Count rows starting at Position
	KindUpdate                  // Replace the row at Position with Items[0]
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindReset:
		return "reset"
	case KindInsert:
		return "insert"
	case KindInsertRange:
		return "insert-range"
	case KindRemove:
		return "remove"
	case KindRemoveRange:
		return "remove-range"
	case KindUpdate:
		return "update"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Edit is one step of an edit script.
// Position is expressed against the sequence with all earlier edits applied.
type Edit[T any] struct {
	Count    int // Rows removed by KindRemoveRange
	Items    []T
	Kind     Kind
	Position int
}

// Span returns the first and last row touched by the edit.
// For removals the rows are those of the sequence before the edit.
func (e Edit[T]) Span() (first, last int) {
	switch e.Kind {
	case KindRemove, KindInsert, KindUpdate:
		return e.Position, e.Position
	case KindRemoveRange:
		return e.Position, e.Position + e.Count - 1
	case KindInsertRange:
		return e.Position, e.Position + len(e.Items) - 1
	}
	return 0, len(e.Items) - 1
}

func (e Edit[T]) String() string {
	switch e.Kind {
	case KindReset:
		return fmt.Sprintf("reset(%d)", len(e.Items))
	case KindRemoveRange:
		return fmt.Sprintf("remove-range(%d,%d)", e.Position, e.Count)
	case KindInsertRange:
		return fmt.Sprintf("insert-range(%d,%d)", e.Position, len(e.Items))
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Position)
}

// Summary counts the rows inserted, removed and updated by a script.
// A reset counts as inserting all of its items.
func Summary[T any](edits []Edit[T]) (inserted, removed, updated int) {
	for _, e := range edits {
		switch e.Kind {
		case KindReset, KindInsert, KindInsertRange:
			inserted += len(e.Items)
		case KindRemove:
			removed++
		case KindRemoveRange:
			removed += e.Count
		case KindUpdate:
			updated++
		}
	}
	return inserted, removed, updated
}

// Apply returns a copy of seq with the edits applied in order
func Apply[T any](seq []T, edits []Edit[T]) ([]T, error) {
	out := append(make([]T, 0, len(seq)), seq...)

	for n, e := range edits {
		var err error
		if out, err = ApplyEdit(out, e); err != nil {
			return nil, fmt.Errorf("edit %d: %w", n, err)
		}
	}

	return out, nil
}

// ApplyEdit applies a single edit in place, reusing the backing array of seq
func ApplyEdit[T any](seq []T, e Edit[T]) ([]T, error) {
	switch e.Kind {
	case KindReset:
		return append(seq[:0], e.Items...), nil

	case KindInsert, KindInsertRange:
		if e.Position < 0 || e.Position > len(seq) {
			return nil, fmt.Errorf("%w: %s on %d rows", ErrOutOfRange, e, len(seq))
		}
		return append(seq[:e.Position], append(append([]T(nil), e.Items...), seq[e.Position:]...)...), nil

	case KindRemove, KindRemoveRange:
		count := e.Count
		if e.Kind == KindRemove {
			count = 1
		}
		if e.Position < 0 || count < 0 || e.Position+count > len(seq) {
			return nil, fmt.Errorf("%w: %s on %d rows", ErrOutOfRange, e, len(seq))
		}
		return append(seq[:e.Position], seq[e.Position+count:]...), nil

	case KindUpdate:
		if e.Position < 0 || e.Position >= len(seq) || len(e.Items) != 1 {
			return nil, fmt.Errorf("%w: %s on %d rows", ErrOutOfRange, e, len(seq))
		}
		seq[e.Position] = e.Items[0]
		return seq, nil
	}

	return nil, fmt.Errorf("unknown edit kind %s", e.Kind)
}
