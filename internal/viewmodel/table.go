// Package viewmodel holds the toolkit independent models behind the entry
// table and the folder tree. They are owned by the UI update loop and are not
// safe for concurrent use.
package viewmodel

import (
	"fmt"
	"sort"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/reconcile"
)

// Observer receives row notifications while an edit script is applied.
// Row numbers refer to the sequence at the time of the notification.
type Observer interface {
	RowsReset()
	RowsInserted(first, last int)
	RowsRemoved(first, last int)
	RowsChanged(row int)
}

// Table owns the Displayed Sequence of one view
type Table struct {
	displayed domain.ViewContext // Context the entries belong to
	entries   []domain.Entry
	epoch     uint64
	observers []Observer
	target    domain.ViewContext // Context requested by the last switch
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{}
}

// Subscribe registers an observer for row notifications
func (t *Table) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

// SwitchContext selects another folder and returns the new epoch.
// Snapshots requested before the switch are discarded when they arrive.
func (t *Table) SwitchContext(vc domain.ViewContext) uint64 {
	t.epoch++
	t.target = vc
	logging.Logger.Debug("Table context switched", "context", vc.String(), "epoch", t.epoch)
	return t.epoch
}

// Epoch identifies the current context selection
func (t *Table) Epoch() uint64 {
	return t.epoch
}

// Context returns the context the table is showing or about to show
func (t *Table) Context() domain.ViewContext {
	return t.target
}

// DisplayedContext returns the context of the rows currently held
func (t *Table) DisplayedContext() domain.ViewContext {
	return t.displayed
}

// Apply reconciles the table against a snapshot.
// It returns domain.ErrStaleSnapshot when the snapshot was requested for an
// earlier epoch or another context, leaving the table untouched.
func (t *Table) Apply(snapshot domain.Snapshot) ([]reconcile.Edit[domain.Entry], error) {
	if snapshot.Epoch != t.epoch || snapshot.Context != t.target {
		return nil, fmt.Errorf("%w: snapshot %s@%d, table %s@%d",
			domain.ErrStaleSnapshot, snapshot.Context, snapshot.Epoch, t.target, t.epoch)
	}

	edits, err := reconcile.Entries(t.displayed, t.entries, snapshot.Context, snapshot.Entries)
	if err != nil {
		return nil, err
	}

	if err := t.ApplyEditScript(edits); err != nil {
		return nil, err
	}
	t.displayed = snapshot.Context

	inserted, removed, updated := reconcile.Summary(edits)
	logging.Logger.Debug("Table reconciled",
		"context", snapshot.Context.String(),
		"edits", len(edits),
		"inserted", inserted,
		"removed", removed,
		"updated", updated)

	return edits, nil
}

// ApplyEditScript applies edits to the backing store one at a time and
// notifies observers after each one
func (t *Table) ApplyEditScript(edits []reconcile.Edit[domain.Entry]) error {
	for _, e := range edits {
		next, err := reconcile.ApplyEdit(t.entries, e)
		if err != nil {
			return err
		}
		t.entries = next
		t.notify(e)
	}
	return nil
}

func (t *Table) notify(e reconcile.Edit[domain.Entry]) {
	for _, o := range t.observers {
		switch e.Kind {
		case reconcile.KindReset:
			o.RowsReset()
		case reconcile.KindInsert, reconcile.KindInsertRange:
			first, last := e.Span()
			o.RowsInserted(first, last)
		case reconcile.KindRemove, reconcile.KindRemoveRange:
			first, last := e.Span()
			o.RowsRemoved(first, last)
		case reconcile.KindUpdate:
			o.RowsChanged(e.Position)
		}
	}
}

// Clear empties the table, e.g. when its project is deleted
func (t *Table) Clear() {
	t.epoch++
	t.target = domain.ViewContext{}
	t.displayed = domain.ViewContext{}
	if err := t.ApplyEditScript(reconcile.ReplaceAll[domain.Entry](nil)); err != nil {
		logging.Logger.Error("Failed to clear table", "error", err)
	}
}

// Entries returns the displayed rows in name order
func (t *Table) Entries() []domain.Entry {
	return t.entries
}

// Len returns the number of displayed rows
func (t *Table) Len() int {
	return len(t.entries)
}

// Get finds an entry by name
func (t *Table) Get(name string) (domain.Entry, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Name >= name })
	if i < len(t.entries) && t.entries[i].Name == name {
		return t.entries[i], true
	}
	return domain.Entry{}, false
}
