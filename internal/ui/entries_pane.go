package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"workbench/internal/domain"
	"workbench/internal/theme"
	"workbench/internal/viewmodel"
)

const (
	dateColumnWidth  = 19
	minNameWidth     = 10
	stateColumnWidth = 6
	typeColumnWidth  = 5
)

// EntriesPane renders the filtered entries of the open folder.
// The cursor follows the selected name across refreshes.
type EntriesPane struct {
	proxy    *viewmodel.FilterProxy
	rows     []domain.Entry
	selected string
	table    table.Model
	width    int
}

// NewEntriesPane creates the pane over proxy
func NewEntriesPane(proxy *viewmodel.FilterProxy) *EntriesPane {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.SelectedStyle

	p := &EntriesPane{
		proxy: proxy,
		table: table.New(table.WithStyles(styles)),
	}
	p.SetSize(80, 10)
	return p
}

// SetSize adapts the column widths to the pane size
func (p *EntriesPane) SetSize(width, height int) {
	p.width = width
	p.table.SetColumns(entryColumns(width, p.proxy.SortOrder()))
	p.table.SetWidth(width)
	p.table.SetHeight(max(height, 2))
}

// Focus gives the pane the cursor highlight
func (p *EntriesPane) Focus() {
	p.table.Focus()
}

// Blur removes the cursor highlight
func (p *EntriesPane) Blur() {
	p.table.Blur()
}

// Sync rebuilds the rows from the proxy and puts the cursor back on the
// selected name. When that name is gone the cursor keeps its row number.
func (p *EntriesPane) Sync() {
	p.rows = p.proxy.Rows()
	p.table.SetColumns(entryColumns(p.width, p.proxy.SortOrder()))

	tableRows := make([]table.Row, len(p.rows))
	for i, e := range p.rows {
		tableRows[i] = entryRow(e)
	}

	cursor := p.table.Cursor()
	p.table.SetRows(tableRows)

	if idx := p.proxy.IndexOf(p.selected); idx >= 0 {
		cursor = idx
	}
	if cursor >= len(p.rows) {
		cursor = len(p.rows) - 1
	}
	p.table.SetCursor(max(cursor, 0))
	p.remember()
}

// ResetSelection forgets the selected name, used when another folder opens
func (p *EntriesPane) ResetSelection() {
	p.selected = ""
	p.table.SetCursor(0)
}

// MoveUp moves the cursor one row up
func (p *EntriesPane) MoveUp() {
	p.table.MoveUp(1)
	p.remember()
}

// MoveDown moves the cursor one row down
func (p *EntriesPane) MoveDown() {
	p.table.MoveDown(1)
	p.remember()
}

// Selected returns the entry under the cursor
func (p *EntriesPane) Selected() (domain.Entry, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.rows) {
		return domain.Entry{}, false
	}
	return p.rows[i], true
}

// SelectedName returns the name the cursor follows
func (p *EntriesPane) SelectedName() string {
	return p.selected
}

// Len returns the number of visible rows
func (p *EntriesPane) Len() int {
	return len(p.rows)
}

// View renders the table
func (p *EntriesPane) View() string {
	if len(p.rows) == 0 {
		return p.table.View() + "\n" + theme.MutedStyle.Render("  no entries")
	}
	return p.table.View()
}

func (p *EntriesPane) remember() {
	if e, ok := p.Selected(); ok {
		p.selected = e.Name
	}
}

// entryRow renders the cells of one entry in column order
func entryRow(e domain.Entry) table.Row {
	return table.Row{
		e.WorkingState(),
		e.DisplayName(),
		e.DisplayDate(),
		e.TypeLabel(),
	}
}

// entryColumns sizes the columns for width, giving the name the rest.
// The sorted column title carries the direction arrow.
func entryColumns(width int, order viewmodel.SortOrder) []table.Column {
	widths := map[domain.Column]int{
		domain.ColumnState: stateColumnWidth,
		domain.ColumnDate:  dateColumnWidth,
		domain.ColumnType:  typeColumnWidth,
	}
	// Each column has one cell of padding on both sides
	fixed := stateColumnWidth + dateColumnWidth + typeColumnWidth + 2*len(domain.AllColumns)
	widths[domain.ColumnName] = max(width-fixed, minNameWidth)

	columns := make([]table.Column, len(domain.AllColumns))
	for i, col := range domain.AllColumns {
		columns[i] = table.Column{Title: columnTitle(col, order), Width: widths[col]}
	}
	return columns
}

func columnTitle(col domain.Column, order viewmodel.SortOrder) string {
	if col != order.Column {
		return col.String()
	}
	if order.Descending {
		return col.String() + " ▼"
	}
	return col.String() + " ▲"
}

// nextSortOrder cycles the sort column in display order, keeping the direction
func nextSortOrder(order viewmodel.SortOrder) viewmodel.SortOrder {
	for i, col := range domain.AllColumns {
		if col == order.Column {
			return viewmodel.SortOrder{
				Column:     domain.AllColumns[(i+1)%len(domain.AllColumns)],
				Descending: order.Descending,
			}
		}
	}
	return viewmodel.SortOrder{Column: domain.ColumnName}
}
