package tbl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// plainColumnGap separates columns when borders are off.
const plainColumnGap = "  "

// terminalTabWidth is the tab stop spacing used when expanding tabs in cells.
const terminalTabWidth = 4

func writeTerminal(w io.Writer, t *Table, o options) error {
	header := t.Headers()
	rows := t.texts()
	aligns := make([]Alignment, len(t.columns))
	for i, c := range t.columns {
		aligns[i] = c.Align
	}
	maxWidths := o.maxWidths

	var footer []string
	if len(o.footer) > 0 {
		if len(o.footer) > len(header) {
			return fmt.Errorf("%w: footer has %d cells, table has %d columns", ErrShape, len(o.footer), len(header))
		}
		footer = make([]string, len(header))
		copy(footer, o.footer)
	}

	// Apply row numbering by prepending a column.
	if o.numbered {
		header = append([]string{o.numHeader}, header...)
		for i, row := range rows {
			rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		if footer != nil {
			footer = append([]string{""}, footer...)
		}
		aligns = append([]Alignment{AlignRight}, aligns...)
		if len(maxWidths) > 0 {
			maxWidths = append([]int{0}, maxWidths...)
		}
	}

	cleanCells(header)
	cleanCells(footer)
	for _, row := range rows {
		cleanCells(row)
	}

	widths := computeWidths(header, rows, footer)

	// Apply max column widths for truncation.
	for i, limit := range maxWidths {
		if i < len(widths) && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}

	var err error
	if o.border == BorderNone {
		err = renderPlainTable(w, o.title, header, rows, footer, widths, aligns)
	} else {
		bc, ok := borderSets[o.border]
		if !ok {
			return fmt.Errorf("%w: unknown border style %d", ErrEncoding, o.border)
		}
		err = renderBorderedTable(w, o.title, header, rows, footer, widths, aligns, bc)
	}
	if err != nil {
		return err
	}

	if o.caption != "" {
		if _, err := fmt.Fprintln(w, o.caption); err != nil {
			return err
		}
	}
	return nil
}

// cleanCells normalizes line breaks and expands tabs in place so that every
// cell measures the same as it prints.
func cleanCells(cells []string) {
	for i, c := range cells {
		cells[i] = expandTabs(newlineReplacer.Replace(c))
	}
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := terminalTabWidth - col%terminalTabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return sb.String()
}

// computeWidths returns the display width of every column over the whole
// table: the widest line of the header and all cells.
func computeWidths(header []string, rows [][]string, more ...[]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = cellWidth(h)
	}
	measure := func(row []string) {
		for i, cell := range row {
			if w := cellWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		measure(row)
	}
	for _, row := range more {
		measure(row)
	}
	return widths
}

func cellWidth(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, runewidth.StringWidth(line))
	}
	return n
}

// --- Multi-line cells ---

func splitRow(cells []string, n int) [][]string {
	split := make([][]string, n)
	for i := range split {
		if i < len(cells) {
			split[i] = strings.Split(cells[i], "\n")
		} else {
			split[i] = []string{""}
		}
	}
	return split
}

func maxLines(split [][]string) int {
	n := 1
	for _, lines := range split {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// lineAt returns the l-th physical line of every cell, blank where a cell
// has fewer lines.
func lineAt(split [][]string, l int) []string {
	out := make([]string, len(split))
	for i, lines := range split {
		if l < len(lines) {
			out[i] = lines[l]
		}
	}
	return out
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, title string, header []string, rows [][]string, footer []string, widths []int, aligns []Alignment) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if err := writePlainRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := writePlainSep(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	if footer != nil {
		if err := writePlainSep(w, widths); err != nil {
			return err
		}
		if err := writePlainRow(w, footer, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, plainColumnGap))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	split := splitRow(cells, len(widths))
	for l := 0; l < maxLines(split); l++ {
		line := lineAt(split, l)
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = formatTableCell(line[i], width, aligns[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, plainColumnGap), " ")); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, title string, header []string, rows [][]string, footer []string, widths []int, aligns []Alignment, bc borderChars) error {
	if title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2 // subtract 1-space padding on each side
		padded := alignCell(runewidth.Truncate(title, inner, "..."), inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		// Transition to columns.
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}

	if footer != nil {
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
		if err := drawBorderedRow(w, footer, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}

	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	split := splitRow(cells, len(widths))
	for l := 0; l < maxLines(split); l++ {
		line := lineAt(split, l)
		var sb strings.Builder
		sb.WriteString(vert)
		for i, width := range widths {
			sb.WriteString(" ")
			sb.WriteString(formatTableCell(line[i], width, aligns[i]))
			sb.WriteString(" ")
			if i < len(widths)-1 {
				sb.WriteString(vert)
			}
		}
		sb.WriteString(vert)
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
