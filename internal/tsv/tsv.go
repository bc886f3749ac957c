// Package tsv provides minimal reading and writing of the tab or
// whitespace delimited tables the pipeline consumes and produces.
package tsv

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/errors"
)

// Fields splits a line on single tab characters. A trailing carriage
// return is stripped first so CRLF input parses like LF input.
func Fields(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, "\t")
}

// LooseFields splits a line on any run of whitespace. Used for tables
// whose values never contain spaces.
func LooseFields(line string) []string {
	return strings.Fields(strings.TrimSuffix(line, "\r"))
}

// Scanner wraps bufio.Scanner with the current line number, so callers
// can report errors as path:line.
type Scanner struct {
	s    *bufio.Scanner
	path string
	line int
}

// NewScanner returns a Scanner reading from r. path is only used for
// error reporting.
func NewScanner(r io.Reader, path string) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{s: s, path: path}
}

// Scan advances to the next line.
func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.line++
	return true
}

// Text returns the current line.
func (s *Scanner) Text() string {
	return s.s.Text()
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Path returns the path the Scanner reports errors against.
func (s *Scanner) Path() string {
	return s.path
}

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error {
	return s.s.Err()
}

// Table is an in-memory delimited table with a header line. Lines
// records the 1-based source line of each row for error reporting.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
	Lines  []int
}

// ReadTable reads a whitespace-delimited table whose first non-blank
// line is the header. Blank lines are skipped.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	t := &Table{Path: path}
	sc := NewScanner(f, path)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := LooseFields(sc.Text())
		if t.Header == nil {
			t.Header = fields
			continue
		}
		t.Rows = append(t.Rows, fields)
		t.Lines = append(t.Lines, sc.Line())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if t.Header == nil {
		return nil, errors.NewParseError("", path, 0, "empty table", nil)
	}
	return t, nil
}

// Column returns the index of the named column, or -1 when absent.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Writer writes tab-delimited rows through a buffered writer.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteRow writes one tab-joined row followed by a newline.
func (w *Writer) WriteRow(fields ...string) error {
	if _, err := w.bw.WriteString(strings.Join(fields, "\t")); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// WriteFile writes header and rows to path as a tab-delimited table.
// The file is written in one pass and ends with a newline.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	w := NewWriter(f)
	if err := w.WriteRow(header...); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	for _, row := range rows {
		if err := w.WriteRow(row...); err != nil {
			f.Close()
			return errors.WrapIO("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
