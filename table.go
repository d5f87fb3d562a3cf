package tbl

import (
	"fmt"
	"strings"
	"unicode"
)

// Table is an immutable set of ordered columns and rows. Build one with
// [Builder]. A Table may be rendered from multiple goroutines at once.
type Table struct {
	columns []Column
	rows    [][]Value

	// origin is the table a selection was taken from, and picks the
	// origin column indices it kept. Both are nil for a built table.
	origin *Table
	picks  []int
}

func newTable(columns []Column, rows [][]Value) *Table {
	t := &Table{
		columns: make([]Column, len(columns)),
		rows:    make([][]Value, len(rows)),
	}
	copy(t.columns, columns)
	for i, row := range rows {
		t.rows[i] = append([]Value(nil), row...)
	}
	return t
}

// Columns returns a copy of the column definitions.
func (t *Table) Columns() []Column {
	if t == nil {
		return nil
	}
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Headers returns the column headers in order.
func (t *Table) Headers() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Header
	}
	return out
}

// Column returns the column with the given header.
func (t *Table) Column(header string) (Column, bool) {
	if i := t.columnIndex(header); i >= 0 {
		return t.columns[i], true
	}
	return Column{}, false
}

// Rows returns a copy of the row data.
func (t *Table) Rows() [][]Value {
	if t == nil {
		return nil
	}
	out := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]Value(nil), row...)
	}
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) columnIndex(header string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.columns {
		if c.Header == header {
			return i
		}
	}
	return -1
}

// validate rejects tables no renderer can draw. Builder-made tables only
// fail here when they have no columns.
func (t *Table) validate() error {
	if t == nil || len(t.columns) == 0 {
		return fmt.Errorf("%w: table has no columns", ErrSchema)
	}
	for i, row := range t.rows {
		if len(row) != len(t.columns) {
			return fmt.Errorf("%w: row %d has %d values, table has %d columns", ErrShape, i, len(row), len(t.columns))
		}
	}
	return nil
}

// texts returns the text form of every cell, row by row.
func (t *Table) texts() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = Text(v)
		}
		out[i] = cells
	}
	return out
}

// Select returns a new table holding a subset of columns.
//
// expr is a comma-separated list of headers; whitespace is ignored. A plain
// list selects exactly those columns in the given order. A leading "+"
// appends the listed columns to the current ones, and a leading "-" removes
// them. Headers are resolved against the table originally built, so a
// column dropped by one selection can be added back by the next. Unknown
// headers, a column selected twice, an empty list, or an empty result fail
// with [ErrSchema].
func (t *Table) Select(expr string) (*Table, error) {
	if t == nil || len(t.columns) == 0 {
		return nil, fmt.Errorf("%w: table has no columns", ErrSchema)
	}
	base, current := t.origin, t.picks
	if base == nil {
		base = t
		current = make([]int, len(t.columns))
		for i := range current {
			current[i] = i
		}
	}

	mode, list := byte(0), expr
	if strings.HasPrefix(expr, "+") || strings.HasPrefix(expr, "-") {
		mode, list = expr[0], expr[1:]
	}
	names, err := parseColumnList(list)
	if err != nil {
		return nil, err
	}
	picked := make([]int, 0, len(names))
	for _, name := range names {
		i := base.columnIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown column %q", ErrSchema, name)
		}
		picked = append(picked, i)
	}

	var indices []int
	switch mode {
	case '+':
		indices = append(append(indices, current...), picked...)
	case '-':
		drop := make(map[int]bool, len(picked))
		for _, i := range picked {
			drop[i] = true
		}
		for _, i := range current {
			if !drop[i] {
				indices = append(indices, i)
			}
		}
	default:
		indices = picked
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: selection %q leaves no columns", ErrSchema, expr)
	}
	return base.project(indices)
}

// project builds a table from the given column indices of t.
func (t *Table) project(indices []int) (*Table, error) {
	seen := make(map[int]bool, len(indices))
	columns := make([]Column, len(indices))
	for j, i := range indices {
		if seen[i] {
			return nil, fmt.Errorf("%w: column %q selected twice", ErrSchema, t.columns[i].Header)
		}
		seen[i] = true
		columns[j] = t.columns[i]
	}
	rows := make([][]Value, len(t.rows))
	for r, row := range t.rows {
		out := make([]Value, len(indices))
		for j, i := range indices {
			out[j] = row[i]
		}
		rows[r] = out
	}
	return &Table{columns: columns, rows: rows, origin: t, picks: indices}, nil
}

func parseColumnList(expr string) ([]string, error) {
	expr = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty column list", ErrSchema)
	}
	var names []string
	for _, name := range strings.Split(expr, ",") {
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty column list", ErrSchema)
	}
	return names, nil
}

// Describe returns a table listing t's columns: one row per column with its
// header, alignment, and description.
func (t *Table) Describe() *Table {
	b := NewBuilder()
	_ = b.AddColumn("column", WithDescription("Column header"))
	_ = b.AddColumn("align", WithDescription("Terminal alignment"))
	_ = b.AddColumn("description", WithDescription("Column description"))
	for _, c := range t.Columns() {
		_ = b.AddRow(String(c.Header), String(c.Align.String()), String(c.Description))
	}
	return b.Build()
}
