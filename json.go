package tbl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func writeJSON(w io.Writer, t *Table, o options) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendJSONObject(&buf, t.columns, row); err != nil {
			return err
		}
	}
	buf.WriteByte(']')

	if o.indent == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", o.indent); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONL(w io.Writer, t *Table) error {
	for _, row := range t.rows {
		var buf bytes.Buffer
		if err := appendJSONObject(&buf, t.columns, row); err != nil {
			return err
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// appendJSONObject writes one row as an object whose keys follow column
// order. encoding/json sorts map keys, so the object is assembled by hand.
func appendJSONObject(buf *bytes.Buffer, columns []Column, row []Value) error {
	buf.WriteByte('{')
	for i, c := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendJSONString(buf, c.Header); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := appendJSONValue(buf, c.Header, row[i]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func appendJSONValue(buf *bytes.Buffer, header string, v Value) error {
	switch v := v.(type) {
	case String:
		return appendJSONString(buf, string(v))
	case Integer, Boolean:
		buf.WriteString(Text(v))
	case Float:
		if !finite(v) {
			return fmt.Errorf("%w: column %q: %v is not a JSON number", ErrEncoding, header, float64(v))
		}
		buf.WriteString(Text(v))
	case Null, nil:
		buf.WriteString("null")
	default:
		panic(fmt.Sprintf("tbl: unknown value type %T", v))
	}
	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
