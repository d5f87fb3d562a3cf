package tbl

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range t.rows {
		if err := tmpl.Execute(w, rowMap(t.columns, row)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// rowMap exposes a row to templates keyed by header, with cells as their
// native Go values.
func rowMap(columns []Column, row []Value) map[string]any {
	m := make(map[string]any, len(columns))
	for i, c := range columns {
		m[c.Header] = native(row[i])
	}
	return m
}

func native(v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Integer:
		return int64(v)
	case Float:
		return float64(v)
	case Boolean:
		return bool(v)
	case Null, nil:
		return nil
	default:
		panic(fmt.Sprintf("tbl: unknown value type %T", v))
	}
}
