// Package rename applies user-supplied chromosome name replacements.
//
// A replacement map is a two-column text file without a header, one
// old_name new_name pair per line. Names absent from the map pass
// through unchanged unless strict mode is enabled.
package rename

import (
	"os"

	"github.com/karyolab/synlink/internal/tsv"
	"github.com/karyolab/synlink/pkg/errors"
)

// Map holds the chromosome name replacements for one species.
// When a name appears more than once in the source file, the last
// entry wins.
type Map struct {
	// Species tags errors with the species index (1 or 2).
	Species int

	// Strict makes Apply fail on names absent from the map.
	Strict bool

	entries map[string]string
	misses  []string
	missed  map[string]bool
}

// Load reads a replacement map from path.
func Load(path string, species int) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	m := &Map{Species: species, entries: make(map[string]string)}
	sc := tsv.NewScanner(f, path)
	for sc.Scan() {
		fields := tsv.LooseFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.NewParseError("replacement", path, sc.Line(), "expected two columns (old_name new_name)", nil)
		}
		m.entries[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return m, nil
}

// NewMap builds a Map from explicit entries.
func NewMap(species int, entries map[string]string) *Map {
	m := &Map{Species: species, entries: make(map[string]string, len(entries))}
	for old, name := range entries {
		m.entries[old] = name
	}
	return m
}

// Len returns the number of replacement entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Apply returns the replacement for name. Unmapped names pass through
// unchanged, or produce a MissingMappingError in strict mode. A nil
// Map passes every name through.
func (m *Map) Apply(name string) (string, error) {
	if m == nil {
		return name, nil
	}
	if replaced, ok := m.entries[name]; ok {
		return replaced, nil
	}
	if m.Strict {
		return "", errors.NewMissingMappingError(m.Species, name)
	}
	if !m.missed[name] {
		if m.missed == nil {
			m.missed = make(map[string]bool)
		}
		m.missed[name] = true
		m.misses = append(m.misses, name)
	}
	return name, nil
}

// Misses returns the unmapped names Apply has passed through, in first
// seen order.
func (m *Map) Misses() []string {
	if m == nil {
		return nil
	}
	return m.misses
}
