// Package busco loads marker placements from BUSCO and Compleasm full
// tables.
//
// A full table opens with a comment preamble followed by a tab-delimited
// header whose first cell is "# Busco id". Only rows whose Status is
// Complete describe a usable single-copy placement; everything else is
// dropped. Marker ids are normalized to lower case so the same marker
// can be matched across assemblies annotated by different tool versions.
package busco

import (
	"os"
	"strconv"
	"strings"

	"github.com/karyolab/synlink/internal/tsv"
	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/rename"
)

// Marker is one Complete marker placement.
type Marker struct {
	ID  string
	Chr string
	Pos int
}

// Set holds the deduplicated Complete markers of one assembly in file
// order.
type Set struct {
	Path    string
	Markers []Marker
}

// statusComplete is the BUSCO status of a single-copy placement.
const statusComplete = "Complete"

// Load reads the full table at path, keeps Complete rows, applies reps
// to chromosome names and deduplicates marker ids keeping the first
// occurrence.
func Load(path string, reps *rename.Map) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	s := &Set{Path: path}
	seen := make(map[string]bool)
	sc := tsv.NewScanner(f, path)

	var idCol, statusCol, chrCol, posCol, maxCol int
	headerFound := false
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := tsv.Fields(line)

		if !headerFound {
			if !isHeader(fields) {
				continue
			}
			idCol, statusCol, chrCol, posCol, err = resolveColumns(path, fields)
			if err != nil {
				return nil, err
			}
			maxCol = idCol
			for _, c := range []int{statusCol, chrCol, posCol} {
				if c > maxCol {
					maxCol = c
				}
			}
			headerFound = true
			continue
		}

		// Missing rows carry the id and status only, so the row
		// length is checked in two steps.
		if len(fields) <= statusCol {
			return nil, errors.NewParseError("busco", path, sc.Line(), "bad field count", nil)
		}
		if fields[statusCol] != statusComplete {
			continue
		}
		if len(fields) <= maxCol {
			return nil, errors.NewParseError("busco", path, sc.Line(), "bad field count for Complete row", nil)
		}

		id := strings.ToLower(strings.TrimSpace(fields[idCol]))
		if id == "" {
			return nil, errors.NewParseError("busco", path, sc.Line(), "empty marker id", nil)
		}
		if seen[id] {
			continue
		}

		chr, err := reps.Apply(strings.TrimSpace(fields[chrCol]))
		if err != nil {
			return nil, err
		}
		pos, err := parsePos(fields[posCol])
		if err != nil {
			return nil, errors.NewParseError("busco", path, sc.Line(),
				"Gene Start is not numeric: "+fields[posCol], err)
		}

		seen[id] = true
		s.Markers = append(s.Markers, Marker{ID: id, Chr: chr, Pos: pos})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if !headerFound {
		return nil, errors.NewSchemaError("busco", path, "marker table header not found")
	}
	return s, nil
}

// Len returns the number of markers.
func (s *Set) Len() int {
	return len(s.Markers)
}

// Index returns markers keyed by id.
func (s *Set) Index() map[string]Marker {
	idx := make(map[string]Marker, len(s.Markers))
	for _, m := range s.Markers {
		idx[m.ID] = m
	}
	return idx
}

// isHeader reports whether fields is the full table header line.
func isHeader(fields []string) bool {
	return len(fields) > 0 && normalizeColumn(fields[0]) == "busco id"
}

// resolveColumns maps the header to column indexes. The chromosome
// column is named Sequence by BUSCO and Contig by Compleasm.
func resolveColumns(path string, header []string) (idCol, statusCol, chrCol, posCol int, err error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeColumn(name)] = i
	}

	var missing []string
	lookup := func(display string, names ...string) int {
		for _, name := range names {
			if i, ok := cols[name]; ok {
				return i
			}
		}
		missing = append(missing, display)
		return -1
	}

	idCol = lookup("Busco id", "busco id")
	statusCol = lookup("Status", "status")
	chrCol = lookup("Sequence", "sequence", "contig")
	posCol = lookup("Gene Start", "gene start")
	if len(missing) > 0 {
		return 0, 0, 0, 0, errors.NewSchemaError("busco", path, "", missing...)
	}
	return idCol, statusCol, chrCol, posCol, nil
}

// normalizeColumn strips the comment prefix BUSCO puts on the first
// header cell and lowercases the name.
func normalizeColumn(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "#")
	return strings.ToLower(strings.TrimSpace(name))
}

// parsePos parses a coordinate, tolerating the float notation some
// annotation tools emit. Fractional positions truncate.
func parsePos(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
