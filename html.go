package tbl

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t *Table, o options) error {
	if len(o.footer) > len(t.columns) {
		return fmt.Errorf("%w: footer has %d cells, table has %d columns", ErrShape, len(o.footer), len(t.columns))
	}
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if o.title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(o.title)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, c := range t.columns {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(c.Align), html.EscapeString(c.Header)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, v := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(t.columns[i].Align), html.EscapeString(Text(v))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	if len(o.footer) > 0 {
		if _, err := fmt.Fprintln(w, "  <tfoot>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, c := range t.columns {
			cell := ""
			if i < len(o.footer) {
				cell = o.footer[i]
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(c.Align), html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </tfoot>"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
