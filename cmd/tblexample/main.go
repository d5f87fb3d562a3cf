// Command tblexample renders a fixed sample table in the format named by its
// single argument.
//
//	tblexample [terminal|json|xml|csv|jsonl|yaml|tsv|markdown|html|record|describe|help]
//
// With no argument the terminal format is used.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"

	"github.com/bjaus/tbl"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type student struct {
	name    string
	age     int
	marks   int
	country string
	score   any
	active  bool
}

var students = []student{
	{"Alice", 25, 90, "United Kingdom", 3.75, true},
	{"Bob", 28, 85, "Australia", 3.5, true},
	{"Charles", 23, 68, "Denmark", 2.8, false},
	{"Frank", 24, 70, "India", nil, true},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cmd := string(tbl.Terminal)
	if len(args) > 0 {
		cmd = args[0]
	}
	if len(args) > 1 {
		usage(stderr)
		return exitUsage
	}

	switch cmd {
	case "help":
		usage(stdout)
		return exitOK
	case "describe":
		t, err := sample()
		if err != nil {
			logger.Errorf("build sample table: %v", err)
			return exitError
		}
		return render(logger, stdout, tbl.Terminal, t.Describe())
	}

	f, err := tbl.ParseFormat(cmd)
	if err != nil || strings.HasPrefix(cmd, "go-template=") {
		usage(stderr)
		return exitUsage
	}
	t, err := sample()
	if err != nil {
		logger.Errorf("build sample table: %v", err)
		return exitError
	}
	return render(logger, stdout, f, t)
}

func newLogger(w io.Writer) *ll.Logger {
	logger := ll.New("tblexample", ll.WithHandler(lh.NewTextHandler(w)))
	logger.Enable()
	return logger
}

func render(logger *ll.Logger, w io.Writer, f tbl.Format, t *tbl.Table) int {
	data, err := tbl.Marshal(f, t)
	if err != nil {
		logger.Errorf("render %s: %v", f, err)
		return exitError
	}
	// Compact JSON has no trailing newline of its own.
	if f == tbl.JSON {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		logger.Errorf("write %s: %v", f, err)
		return exitError
	}
	return exitOK
}

func sample() (*tbl.Table, error) {
	b := tbl.NewBuilder()
	columns := []struct {
		header string
		align  tbl.Alignment
		descr  string
	}{
		{"name", tbl.AlignLeft, "Student name"},
		{"age", tbl.AlignRight, "Age in years"},
		{"marks", tbl.AlignRight, "Exam marks"},
		{"country", tbl.AlignLeft, "Country of residence"},
		{"score", tbl.AlignRight, "Grade point average, if graded"},
		{"active", tbl.AlignCenter, "Currently enrolled"},
	}
	for _, c := range columns {
		if err := b.AddColumn(c.header, tbl.WithAlign(c.align), tbl.WithDescription(c.descr)); err != nil {
			return nil, err
		}
	}
	for _, s := range students {
		if err := b.AddRecord(s.name, s.age, s.marks, s.country, s.score, s.active); err != nil {
			return nil, fmt.Errorf("student %q: %w", s.name, err)
		}
	}
	return b.Build(), nil
}

func usage(w io.Writer) {
	names := make([]string, 0, len(tbl.Formats())+2)
	for _, f := range tbl.Formats() {
		names = append(names, f.String())
	}
	names = append(names, "describe", "help")
	fmt.Fprintf(w, "usage: tblexample [%s]\n", strings.Join(names, "|"))
}
