package tbl

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

func writeXML(w io.Writer, t *Table, o options) error {
	// Reject bad names before writing anything.
	for _, name := range []string{o.xmlRoot, o.xmlRow} {
		if err := checkElementName(name); err != nil {
			return err
		}
	}
	for _, c := range t.columns {
		if err := checkElementName(c.Header); err != nil {
			return fmt.Errorf("column %q: %w", c.Header, err)
		}
	}

	for r, row := range t.rows {
		for i, v := range row {
			if err := checkCharData(Text(v)); err != nil {
				return fmt.Errorf("row %d, column %q: %w", r+1, t.columns[i].Header, err)
			}
		}
	}

	indent := o.indent
	if indent == "" {
		indent = DefaultXMLIndent
	}

	if o.xmlHeader {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "<%s>\n", o.xmlRoot); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintf(w, "%s<%s>\n", indent, o.xmlRow); err != nil {
			return err
		}
		for i, c := range t.columns {
			if err := writeXMLField(w, indent+indent, c.Header, row[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s</%s>\n", indent, o.xmlRow); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>\n", o.xmlRoot)
	return err
}

func writeXMLField(w io.Writer, prefix, name string, v Value) error {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(Text(v))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s<%s>%s</%s>\n", prefix, name, sb.String(), name)
	return err
}

// checkElementName reports whether name can be used verbatim as an XML
// element name. Namespaces are not supported, so ':' is rejected, as are
// names reserved by the "xml" prefix.
func checkElementName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty element name", ErrEncoding)
	}
	if len(name) >= 3 && strings.EqualFold(name[:3], "xml") {
		return fmt.Errorf("%w: element name %q uses the reserved xml prefix", ErrEncoding, name)
	}
	for i, r := range name {
		if r == utf8.RuneError {
			return fmt.Errorf("%w: element name %q is not valid UTF-8", ErrEncoding, name)
		}
		if i == 0 && !isNameStart(r) {
			return fmt.Errorf("%w: element name %q cannot start with %q", ErrEncoding, name, r)
		}
		if !isNameStart(r) && !unicode.IsDigit(r) && r != '-' && r != '.' {
			return fmt.Errorf("%w: element name %q contains %q", ErrEncoding, name, r)
		}
	}
	return nil
}

// checkCharData rejects text that XML 1.0 cannot carry, which EscapeText
// would otherwise replace with U+FFFD.
func checkCharData(s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrEncoding, i)
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U is not allowed in XML", ErrEncoding, r)
		}
		i += size
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
