package tbl

import (
	"fmt"
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignNames[a]
}

// Column describes one table column. Header doubles as the field key in
// JSON, XML, YAML and CSV output, so it must be unique within a table.
type Column struct {
	Header      string
	Align       Alignment
	Description string
}

// ColumnOption configures a column added with [Builder.AddColumn].
type ColumnOption func(*Column)

// WithAlign sets the alignment hint used by the Terminal and Markdown
// formats. Default: AlignLeft.
func WithAlign(a Alignment) ColumnOption {
	return func(c *Column) { c.Align = a }
}

// WithDescription attaches a free-form description, shown by
// [Table.Describe].
func WithDescription(s string) ColumnOption {
	return func(c *Column) { c.Description = s }
}

// Builder accumulates columns and rows. A Builder is not safe for
// concurrent use.
type Builder struct {
	columns []Column
	index   map[string]int
	rows    [][]Value
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddColumn appends a column. It fails with [ErrSchema] when header is empty
// or already used.
func (b *Builder) AddColumn(header string, opts ...ColumnOption) error {
	if header == "" {
		return fmt.Errorf("%w: empty column header", ErrSchema)
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if _, ok := b.index[header]; ok {
		return fmt.Errorf("%w: duplicate column header %q", ErrSchema, header)
	}
	c := Column{Header: header}
	for _, opt := range opts {
		opt(&c)
	}
	b.index[header] = len(b.columns)
	b.columns = append(b.columns, c)
	return nil
}

// AddRow appends a row. It fails with [ErrShape] when no columns have been
// defined or when len(values) differs from the column count. Nil values are
// stored as [Null].
func (b *Builder) AddRow(values ...Value) error {
	if len(b.columns) == 0 {
		return fmt.Errorf("%w: no columns defined", ErrShape)
	}
	if len(values) != len(b.columns) {
		return fmt.Errorf("%w: row has %d values, table has %d columns", ErrShape, len(values), len(b.columns))
	}
	row := make([]Value, len(values))
	for i, v := range values {
		if v == nil {
			v = Null{}
		}
		row[i] = v
	}
	b.rows = append(b.rows, row)
	return nil
}

// AddRecord converts each native Go value with [Of] and appends the result
// as a row.
func (b *Builder) AddRecord(values ...any) error {
	row := make([]Value, len(values))
	for i, x := range values {
		v, err := Of(x)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		row[i] = v
	}
	return b.AddRow(row...)
}

// Build returns the accumulated table. The table owns its own copy of the
// columns and rows, so later builder calls do not affect it.
func (b *Builder) Build() *Table {
	return newTable(b.columns, b.rows)
}
