package tbl

import (
	"io"
)

func writeTSV(w io.Writer, t *Table) error {
	return writeCSV(w, t, '\t')
}
