// Package tbl builds in-memory tables of typed cells and renders them in
// multiple output formats.
//
// A [Table] has ordered columns and ordered rows. Build one with a
// [Builder], then hand it to [Write] or [Marshal] with a [Format]:
//
//	b := tbl.NewBuilder()
//	_ = b.AddColumn("name")
//	_ = b.AddColumn("age", tbl.WithAlign(tbl.AlignRight))
//	_ = b.AddRow(tbl.String("Ann"), tbl.Integer(7))
//	err := tbl.Write(os.Stdout, tbl.JSON, b.Build())
//
// # Values
//
// Cells hold a [Value], which is one of [String], [Integer], [Float],
// [Boolean], or [Null]. [Text] gives the text form every renderer uses, so a
// float prints the same way in all formats. [Of] converts native Go scalars.
//
// # Formats
//
//   - [Terminal] — box-drawn table sized to its widest cells
//   - [JSON] — array of objects keyed by header, in column order
//   - [XML] — root element with one child per row, one grandchild per cell
//   - [CSV] — header line then rows, quoted only where needed
//
// [JSONL], [YAML], [TSV], [Markdown], [HTML], [Record] (one "header  value"
// line per cell, rows separated by a blank line), and [GoTemplate] are also
// available. Use [ParseFormat] to turn a CLI argument into a [Format].
//
// # Options
//
// Rendering is configured with [Option] values such as [WithBorder],
// [WithTitle], [WithRowNumbers], [WithFooter], [WithIndent],
// [WithDelimiter], and [WithXMLElements]. Defaults live in the Default* constants.
//
// # Column Selection
//
// [Table.Select] projects a table onto a subset of its columns using a
// comma-separated list, optionally prefixed with "+" (append) or "-"
// (remove). [Table.Describe] lists a table's columns as a table.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrSchema] — empty or duplicate header, no columns
//   - [ErrShape] — row length does not match the column count
//   - [ErrEncoding] — content the format cannot express, such as an
//     invalid XML element name, a control character in XML, or a NaN in JSON
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//
// Rendering is all-or-nothing: on error nothing is written.
//
// # Concurrency
//
// A built Table is never modified and may be rendered from several
// goroutines at once. A Builder must only be used by one goroutine.
package tbl
