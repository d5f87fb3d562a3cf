package tbl

import (
	"encoding/csv"
	"io"
)

// writeCSV quotes a field only when encoding/csv requires it: the field
// holds the delimiter, a quote, CR or LF, or starts with a space or tab.
// Lines end in "\n".
func writeCSV(w io.Writer, t *Table, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	if err := cw.Write(t.Headers()); err != nil {
		return err
	}
	for _, row := range t.texts() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
