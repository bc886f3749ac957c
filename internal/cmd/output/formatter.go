// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatWide  Format = "wide"
)

// ParseFormat validates a format name from a flag value. The empty
// string is accepted and means auto-detect.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatWide, "":
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: table, json, yaml, wide)", s)
}

// DetectFormat picks the output format. An explicit format wins;
// otherwise terminals get a table and pipes get JSON.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// Formatter renders command results to a writer.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for the given format. Unknown
// formats render as tables.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatWide:
		return &TableFormatter{Wide: true}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter renders indented JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(data)
}

// YAMLFormatter renders YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(false))
	defer enc.Close()
	return enc.Encode(data)
}

// Align controls per-column alignment in table output.
type Align int

// Column alignments.
const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Data is a rendered table: headers plus string cells, with optional
// per-column alignment.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// narrowCellLimit is where non-wide tables shorten a cell.
const narrowCellLimit = 48

// TableFormatter renders aligned text tables. Structs and struct
// slices are tabulated through reflection; anything else falls back
// to JSON. Wide output keeps long cells intact instead of shortening
// them.
type TableFormatter struct {
	Wide bool
}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if d, ok := data.(Data); ok {
		return f.render(w, d)
	}
	if d, ok := f.tabulate(data); ok {
		return f.render(w, d)
	}
	return (&JSONFormatter{Indent: "  "}).Format(w, data)
}

func (f *TableFormatter) render(w io.Writer, data Data) error {
	config := tablewriter.Config{}
	if aligns := twAlignments(data.ColumnAlignment); aligns != nil {
		config.Header.Alignment = tw.CellAlignment{PerColumn: aligns}
		config.Row.Alignment = tw.CellAlignment{PerColumn: aligns}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}
	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func twAlignments(aligns []Align) []tw.Align {
	if len(aligns) == 0 {
		return nil
	}
	out := make([]tw.Align, len(aligns))
	for i, a := range aligns {
		switch a {
		case AlignLeft:
			out[i] = tw.AlignLeft
		case AlignCenter:
			out[i] = tw.AlignCenter
		case AlignRight:
			out[i] = tw.AlignRight
		default:
			out[i] = tw.Skip
		}
	}
	return out
}

// tabulate converts struct values and non-empty struct slices to
// table data. Other shapes report false.
func (f *TableFormatter) tabulate(data any) (Data, bool) {
	v := reflect.Indirect(reflect.ValueOf(data))
	switch {
	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		return f.sliceTable(v), true
	case v.Kind() == reflect.Struct:
		return f.propertyTable(v), true
	}
	return Data{}, false
}

// sliceTable renders one row per element, one column per field.
// Numeric columns are right-aligned.
func (f *TableFormatter) sliceTable(v reflect.Value) Data {
	t := v.Index(0).Type()

	headers := make([]string, t.NumField())
	aligns := make([]Align, t.NumField())
	for i := range headers {
		headers[i] = fieldHeader(t.Field(i))
		if isNumericKind(t.Field(i).Type.Kind()) {
			aligns[i] = AlignRight
		}
	}

	rows := make([][]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		row := make([]string, elem.NumField())
		for j := range row {
			row[j] = f.cell(elem.Field(j).Interface())
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: aligns}
}

// propertyTable renders a single struct as property/value pairs.
func (f *TableFormatter) propertyTable(v reflect.Value) Data {
	t := v.Type()
	rows := make([][]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		rows = append(rows, []string{fieldHeader(t.Field(i)), f.cell(v.Field(i).Interface())})
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// cell renders one value, shortening long text unless wide output was
// requested.
func (f *TableFormatter) cell(v any) string {
	s := fmt.Sprintf("%v", v)
	if f.Wide {
		return s
	}
	if r := []rune(s); len(r) > narrowCellLimit {
		return string(r[:narrowCellLimit-3]) + "..."
	}
	return s
}

// fieldHeader derives a column header from a struct field, preferring
// its json tag.
func fieldHeader(field reflect.StructField) string {
	tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if tag == "" || tag == "-" {
		return field.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "_", " "))
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
