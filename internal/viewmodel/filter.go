package viewmodel

import (
	"sort"

	"workbench/internal/domain"
)

// SortOrder is the column and direction the proxy sorts by
type SortOrder struct {
	Column     domain.Column
	Descending bool
}

// FilterProxy presents a filtered and sorted view of a Table
type FilterProxy struct {
	dirty       bool
	order       SortOrder
	rows        []domain.Entry
	showIgnored bool
	source      *Table
	text        string
}

// NewFilterProxy creates a proxy over source sorted by name
func NewFilterProxy(source *Table) *FilterProxy {
	p := &FilterProxy{
		dirty:  true,
		order:  SortOrder{Column: domain.ColumnName},
		source: source,
	}
	source.Subscribe(p)
	return p
}

// SetFilterText sets the case insensitive name filter
func (p *FilterProxy) SetFilterText(text string) {
	if p.text != text {
		p.text = text
		p.dirty = true
	}
}

// FilterText returns the current name filter
func (p *FilterProxy) FilterText() string {
	return p.text
}

// SetShowIgnored includes entries the SCM has no status for
func (p *FilterProxy) SetShowIgnored(show bool) {
	if p.showIgnored != show {
		p.showIgnored = show
		p.dirty = true
	}
}

// ShowIgnored reports whether entries without status are shown
func (p *FilterProxy) ShowIgnored() bool {
	return p.showIgnored
}

// SetSortOrder changes the sort column and direction
func (p *FilterProxy) SetSortOrder(order SortOrder) {
	if p.order != order {
		p.order = order
		p.dirty = true
	}
}

// SortOrder returns the current sort column and direction
func (p *FilterProxy) SortOrder() SortOrder {
	return p.order
}

// Accepts reports whether an entry passes the filter
func (p *FilterProxy) Accepts(e domain.Entry) bool {
	if !p.showIgnored && e.IgnoredByFilter() {
		return false
	}
	return e.ContainsFold(p.text)
}

// Rows returns the visible entries in display order
func (p *FilterProxy) Rows() []domain.Entry {
	if !p.dirty {
		return p.rows
	}

	rows := make([]domain.Entry, 0, p.source.Len())
	for _, e := range p.source.Entries() {
		if p.Accepts(e) {
			rows = append(rows, e)
		}
	}

	order := p.order
	sort.SliceStable(rows, func(i, j int) bool {
		c := domain.CompareByColumn(order.Column, rows[i], rows[j])
		if order.Descending {
			return c > 0
		}
		return c < 0
	})

	p.rows = rows
	p.dirty = false
	return rows
}

// IndexOf returns the visible row of name, or -1
func (p *FilterProxy) IndexOf(name string) int {
	for i, e := range p.Rows() {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// IndexesOf maps names to visible rows, skipping names that are filtered out
func (p *FilterProxy) IndexesOf(names []string) []int {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var rows []int
	for i, e := range p.Rows() {
		if wanted[e.Name] {
			rows = append(rows, i)
		}
	}
	return rows
}

// RowsReset implements Observer
func (p *FilterProxy) RowsReset() { p.dirty = true }

// RowsInserted implements Observer
func (p *FilterProxy) RowsInserted(first, last int) { p.dirty = true }

// RowsRemoved implements Observer
func (p *FilterProxy) RowsRemoved(first, last int) { p.dirty = true }

// RowsChanged implements Observer
func (p *FilterProxy) RowsChanged(row int) { p.dirty = true }
