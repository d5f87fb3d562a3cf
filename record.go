package tbl

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// recordGap separates the header column from the value column.
const recordGap = "  "

// writeRecord prints each row vertically, one "header  value" line per
// column, with a blank line between rows.
func writeRecord(w io.Writer, t *Table) error {
	width := 0
	for _, c := range t.columns {
		width = max(width, runewidth.StringWidth(c.Header))
	}
	cont := strings.Repeat(" ", width+len(recordGap))

	for r, row := range t.rows {
		if r > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for i, c := range t.columns {
			text := newlineReplacer.Replace(Text(row[i]))
			text = strings.ReplaceAll(text, "\n", "\n"+cont)
			line := alignCell(c.Header, width, AlignLeft) + recordGap + text
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}
