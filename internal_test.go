package tbl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errInternalWrite
	}
	f.calls++
	return len(p), nil
}

func sampleTable() *Table {
	b := NewBuilder()
	_ = b.AddColumn("name")
	_ = b.AddColumn("age", WithAlign(AlignRight))
	_ = b.AddRow(String("Ann"), Integer(7))
	_ = b.AddRow(String("Bob"), Null{})
	return b.Build()
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		align Alignment
		want  string
	}{
		"left":        {s: "ab", width: 5, align: AlignLeft, want: "ab   "},
		"right":       {s: "ab", width: 5, align: AlignRight, want: "   ab"},
		"center odd":  {s: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"center even": {s: "ab", width: 4, align: AlignCenter, want: " ab "},
		"exact":       {s: "abc", width: 3, align: AlignRight, want: "abc"},
		"wide rune":   {s: "你", width: 4, align: AlignLeft, want: "你  "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignCell(tt.s, tt.width, tt.align))
		})
	}
}

func TestFormatTableCellTruncates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "he...", formatTableCell("hello world", 5, AlignLeft))
	assert.Equal(t, "hel", formatTableCell("hello", 3, AlignLeft))
	assert.Equal(t, "", formatTableCell("", 0, AlignLeft))
}

func TestComputeWidths(t *testing.T) {
	t.Parallel()
	widths := computeWidths([]string{"name", "a"}, [][]string{{"Ann", "12345"}, {"Bartholomew", ""}})
	assert.Equal(t, []int{11, 5}, widths)
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in, want string
	}{
		"none":       {in: "abc", want: "abc"},
		"mid":        {in: "a\tb", want: "a   b"},
		"leading":    {in: "\tx", want: "    x"},
		"at stop":    {in: "abcd\te", want: "abcd    e"},
		"per line":   {in: "abc\nd\te", want: "abc\nd   e"},
		"wide runes": {in: "你\tx", want: "你  x"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, expandTabs(tt.in))
		})
	}
}

func TestCellWidthUsesWidestLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, cellWidth("ab\nabcd\nc"))
	assert.Equal(t, 0, cellWidth(""))
	assert.Equal(t, []int{5}, computeWidths([]string{"a"}, nil, []string{"x\nhello"}))
}

func TestSplitRow(t *testing.T) {
	t.Parallel()
	split := splitRow([]string{"a\nb\nc", "d"}, 2)
	assert.Equal(t, 3, maxLines(split))
	assert.Equal(t, []string{"b", ""}, lineAt(split, 1))
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, tableInnerWidth(nil))
	assert.Equal(t, 5, tableInnerWidth([]int{3}))
	assert.Equal(t, 12, tableInnerWidth([]int{4, 3}))
}

func TestCheckElementName(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"a", "_a", "a1", "a-b.c", "Ünï", "xm", "x_ml"} {
		assert.NoError(t, checkElementName(ok), ok)
	}
	for _, bad := range []string{"", "1a", ".a", "-a", "a b", "a:b", "xml", "XmlThing", "a&b", "a\xffb"} {
		assert.ErrorIs(t, checkElementName(bad), ErrEncoding, bad)
	}
}

func TestCheckCharData(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"", "plain", "tab\there", "cr\rlf\n", "ünï", "😀", "\uFFFD"} {
		assert.NoError(t, checkCharData(ok), ok)
	}
	for _, bad := range []string{"\x00", "a\x1fb", "\x7f\xff", "\uFFFF", "\uFFFE", "\xed\xa0\x80"} {
		assert.ErrorIs(t, checkCharData(bad), ErrEncoding, bad)
	}
}

func TestValidateShapeMismatch(t *testing.T) {
	t.Parallel()
	// Only reachable by assembling a Table by hand.
	tb := &Table{
		columns: []Column{{Header: "a"}, {Header: "b"}},
		rows:    [][]Value{{Integer(1)}},
	}
	require.ErrorIs(t, tb.validate(), ErrShape)
	_, err := Marshal(CSV, tb)
	require.ErrorIs(t, err, ErrShape)
}

func TestValidateZeroValueTable(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, (&Table{}).validate(), ErrSchema)
}

func TestNewOptionsDefaults(t *testing.T) {
	t.Parallel()
	o := newOptions(nil)
	assert.Equal(t, DefaultBorder, o.border)
	assert.Equal(t, rune(DefaultDelimiter), o.delimiter)
	assert.Equal(t, DefaultXMLRoot, o.xmlRoot)
	assert.Equal(t, DefaultXMLRow, o.xmlRow)
	assert.Empty(t, o.indent)
	assert.False(t, o.numbered)
}

func TestSelectKeepsOrigin(t *testing.T) {
	t.Parallel()
	src := sampleTable()
	sub, err := src.Select("age")
	require.NoError(t, err)
	assert.Same(t, src, sub.origin)
	assert.Equal(t, []int{1}, sub.picks)

	again, err := sub.Select("+name")
	require.NoError(t, err)
	assert.Same(t, src, again.origin, "selections chain back to the built table")
	assert.Equal(t, []int{1, 0}, again.picks)
}

func TestNativeValues(t *testing.T) {
	t.Parallel()
	m := rowMap(sampleTable().columns, []Value{String("x"), Float(1.5)})
	assert.Equal(t, map[string]any{"name": "x", "age": 1.5}, m)
	assert.Nil(t, native(Null{}))
	assert.Equal(t, int64(3), native(Integer(3)))
	assert.Equal(t, true, native(Boolean(true)))
}

// Every renderer must surface writer failures. The sweep fails the writer at
// each successive call until rendering completes.
func TestRenderersPropagateWriteErrors(t *testing.T) {
	t.Parallel()
	tb := sampleTable()
	o := newOptions([]Option{WithTitle("People"), WithCaption("2 rows"), WithXMLHeader()})
	renderers := map[string]func(w *failAfterN) error{
		"terminal": func(w *failAfterN) error { return writeTerminal(w, tb, o) },
		"terminal none": func(w *failAfterN) error {
			return writeTerminal(w, tb, newOptions([]Option{WithBorder(BorderNone), WithTitle("x")}))
		},
		"json":        func(w *failAfterN) error { return writeJSON(w, tb, o) },
		"json indent": func(w *failAfterN) error { return writeJSON(w, tb, newOptions([]Option{WithIndent("  ")})) },
		"jsonl":       func(w *failAfterN) error { return writeJSONL(w, tb) },
		"xml":         func(w *failAfterN) error { return writeXML(w, tb, o) },
		"csv":         func(w *failAfterN) error { return writeCSV(w, tb, ',') },
		"yaml":        func(w *failAfterN) error { return writeYAML(w, tb, o) },
		"markdown":    func(w *failAfterN) error { return writeMarkdown(w, tb) },
		"html":        func(w *failAfterN) error { return writeHTML(w, tb, o) },
		"html footer": func(w *failAfterN) error { return writeHTML(w, tb, newOptions([]Option{WithFooter("x")})) },
		"record":      func(w *failAfterN) error { return writeRecord(w, tb) },
		"terminal footer": func(w *failAfterN) error {
			return writeTerminal(w, tb, newOptions([]Option{WithFooter("a\nb"), WithBorder(BorderNone)}))
		},
		"template": func(w *failAfterN) error { return writeGoTemplate(w, "{{.name}}", tb) },
	}
	for name, fn := range renderers {
		fn := fn
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var n int
			for n = 0; n < 100; n++ {
				if err := fn(&failAfterN{n: n}); err == nil {
					break
				}
			}
			require.Less(t, n, 100, "renderer never succeeded")
			require.Positive(t, n, "renderer wrote nothing")
		})
	}
}

func TestWriteCSVErrorLargeField(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	_ = b.AddColumn("big")
	_ = b.AddRow(String(strings.Repeat("x", 5000)))
	// Large data exceeds the bufio buffer (4096 bytes), causing cw.Write to fail.
	err := writeCSV(&errWriterInternal{}, b.Build(), ',')
	assert.Error(t, err)
}

func TestWriteJSONStringNoHTMLEscape(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, appendJSONString(&buf, "<&>"))
	assert.Equal(t, `"<&>"`, buf.String())
}
