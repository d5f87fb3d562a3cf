package tbl

// BorderStyle controls terminal table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Layout defaults. Golden output depends on these, so they are the single
// place the formatting choices are made.
const (
	DefaultBorder     = BorderRounded
	DefaultDelimiter  = ','
	DefaultXMLRoot    = "rows"
	DefaultXMLRow     = "row"
	DefaultXMLIndent  = "  "
	DefaultYAMLIndent = 2
)

// YAML emitters only accept indents in this range.
const (
	MinYAMLIndent = 2
	MaxYAMLIndent = 9
)

// Option configures rendering.
type Option func(*options)

type options struct {
	border    BorderStyle
	title     string
	caption   string
	numbered  bool
	numHeader string
	maxWidths []int
	indent    string
	delimiter rune
	xmlRoot   string
	xmlRow    string
	xmlHeader bool
	footer    []string
}

func newOptions(opts []Option) options {
	o := options{
		border:    DefaultBorder,
		delimiter: DefaultDelimiter,
		xmlRoot:   DefaultXMLRoot,
		xmlRow:    DefaultXMLRow,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBorder sets the Terminal border style. Default: [DefaultBorder].
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

// WithTitle renders a title above the Terminal table and as the HTML
// caption.
func WithTitle(s string) Option {
	return func(o *options) { o.title = s }
}

// WithCaption renders a line below the Terminal table.
func WithCaption(s string) Option {
	return func(o *options) { o.caption = s }
}

// WithRowNumbers prepends a right-aligned row number column to the
// Terminal table, headed by header.
func WithRowNumbers(header string) Option {
	return func(o *options) {
		o.numbered = true
		o.numHeader = header
	}
}

// WithMaxWidths sets maximum Terminal column widths. Cells exceeding the
// max are truncated with "...". A zero value means no limit for that column.
func WithMaxWidths(widths ...int) Option {
	return func(o *options) { o.maxWidths = widths }
}

// WithFooter adds a summary row below the Terminal table, after a separator,
// and a <tfoot> row to HTML. Missing trailing cells are blank; more cells
// than columns fail with [ErrShape].
func WithFooter(cells ...string) Option {
	return func(o *options) { o.footer = cells }
}

// WithIndent pretty-prints JSON and YAML, and sets the XML indent unit.
// Without it JSON is compact, YAML uses [DefaultYAMLIndent] and XML uses
// [DefaultXMLIndent]. YAML indents by the length of indent, clamped to
// [MinYAMLIndent, MaxYAMLIndent].
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delimiter = r }
}

// WithXMLElements overrides the XML root and row element names. Both must
// be valid element names.
func WithXMLElements(root, row string) Option {
	return func(o *options) {
		o.xmlRoot = root
		o.xmlRow = row
	}
}

// WithXMLHeader prepends the standard XML declaration.
func WithXMLHeader() Option {
	return func(o *options) { o.xmlHeader = true }
}
