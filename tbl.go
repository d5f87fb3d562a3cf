package tbl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrSchema reports invalid or missing column definitions, including a
	// table with zero columns.
	ErrSchema = errors.New("schema error")
	// ErrShape reports a row whose value count differs from the column count.
	ErrShape = errors.New("shape error")
	// ErrEncoding reports content that cannot be represented in the target
	// format, such as a header that is not a valid XML element name.
	ErrEncoding = errors.New("encoding error")

	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Terminal Format = "terminal"
	JSON     Format = "json"
	XML      Format = "xml"
	CSV      Format = "csv"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Record   Format = "record"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Terminal, JSON, XML, CSV, JSONL, YAML, TSV, Markdown, HTML, Record}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go
// text/template. The row is passed to the template as a map keyed by
// column header.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t in format f and writes the result to w.
//
// The whole document is rendered before anything is written, so a render
// error never leaves partial output in w.
func Write(w io.Writer, f Format, t *Table, opts ...Option) error {
	data, err := Marshal(f, t, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table, opts ...Option) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	var buf bytes.Buffer
	var err error
	switch f {
	case Terminal:
		err = writeTerminal(&buf, t, o)
	case JSON:
		err = writeJSON(&buf, t, o)
	case XML:
		err = writeXML(&buf, t, o)
	case CSV:
		err = writeCSV(&buf, t, o.delimiter)
	case JSONL:
		err = writeJSONL(&buf, t)
	case YAML:
		err = writeYAML(&buf, t, o)
	case TSV:
		err = writeTSV(&buf, t)
	case Markdown:
		err = writeMarkdown(&buf, t)
	case HTML:
		err = writeHTML(&buf, t, o)
	case Record:
		err = writeRecord(&buf, t)
	default:
		tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
		}
		err = writeGoTemplate(&buf, tmpl, t)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
