// Package karyotype loads and normalizes per-species chromosome tables
// and merges two normalized karyotypes into the dual-species table the
// renderer consumes.
//
// A karyotype file is a delimited table with columns Chr, Start, End
// and Species. Loading applies chromosome name replacements, validates
// every coordinate range, orders chromosomes by a deterministic sort
// key and assigns each a rank.
package karyotype

import (
	"sort"
	"strconv"
	"strings"

	"github.com/karyolab/synlink/internal/tsv"
	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/rename"
)

// Chromosome is one normalized karyotype row.
type Chromosome struct {
	Name    string
	Start   int
	End     int
	Species string

	// Rank is the 1-based position of the chromosome in sort order,
	// unique within its species.
	Rank int
}

// Karyotype is a normalized chromosome table for one species.
type Karyotype struct {
	Path        string
	Chromosomes []Chromosome
}

// requiredColumns are the columns every karyotype file must carry.
var requiredColumns = []string{"Chr", "Start", "End", "Species"}

// Load reads the karyotype at path, applies reps to chromosome names,
// validates ranges and assigns ranks. Chromosomes are ordered numeric
// first (Roman numerals count as numeric), then lexicographic.
func Load(path string, reps *rename.Map) (*Karyotype, error) {
	table, err := tsv.ReadTable(path)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, col := range requiredColumns {
		if table.Column(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewSchemaError("karyotype", path, "", missing...)
	}

	chrCol := table.Column("Chr")
	startCol := table.Column("Start")
	endCol := table.Column("End")
	speciesCol := table.Column("Species")

	k := &Karyotype{Path: path}
	seen := make(map[string]int)
	for i, row := range table.Rows {
		line := table.Lines[i]
		if len(row) <= speciesCol || len(row) <= chrCol || len(row) <= startCol || len(row) <= endCol {
			return nil, errors.NewParseError("karyotype", path, line, "bad field count", nil)
		}

		name, err := reps.Apply(row[chrCol])
		if err != nil {
			return nil, err
		}

		start, err := strconv.Atoi(row[startCol])
		if err != nil {
			return nil, errors.NewParseError("karyotype", path, line, "Start is not an integer: "+row[startCol], err)
		}
		end, err := strconv.Atoi(row[endCol])
		if err != nil {
			return nil, errors.NewParseError("karyotype", path, line, "End is not an integer: "+row[endCol], err)
		}
		if start < 0 || start >= end {
			return nil, errors.NewInvalidRangeError(path, line, name, start, end)
		}

		if prev, ok := seen[name]; ok {
			return nil, errors.NewParseError("karyotype", path, line,
				"duplicate chromosome name "+name+" (first seen on line "+strconv.Itoa(prev)+")", nil)
		}
		seen[name] = line

		k.Chromosomes = append(k.Chromosomes, Chromosome{
			Name:    name,
			Start:   start,
			End:     end,
			Species: row[speciesCol],
		})
	}

	sort.SliceStable(k.Chromosomes, func(i, j int) bool {
		return Less(k.Chromosomes[i].Name, k.Chromosomes[j].Name)
	})
	for i := range k.Chromosomes {
		k.Chromosomes[i].Rank = i + 1
	}
	return k, nil
}

// Names returns chromosome names in rank order.
func (k *Karyotype) Names() []string {
	names := make([]string, len(k.Chromosomes))
	for i, c := range k.Chromosomes {
		names[i] = c.Name
	}
	return names
}

// Find returns the chromosome with the given name.
func (k *Karyotype) Find(name string) (Chromosome, bool) {
	for _, c := range k.Chromosomes {
		if c.Name == name {
			return c, true
		}
	}
	return Chromosome{}, false
}

// Len returns the number of chromosomes.
func (k *Karyotype) Len() int {
	return len(k.Chromosomes)
}

// romanNumerals covers the chromosome numbering used by yeast-style
// assemblies.
var romanNumerals = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6, "VII": 7, "VIII": 8,
	"IX": 9, "X": 10, "XI": 11, "XII": 12, "XIII": 13, "XIV": 14, "XV": 15,
	"XVI": 16, "XVII": 17, "XVIII": 18, "XIX": 19, "XX": 20,
}

// Less orders chromosome names numeric first, then lexicographic.
// Decimal and Roman numeral names compare by value; all remaining
// names compare as strings after the numeric block.
func Less(a, b string) bool {
	av, aNum := numericValue(a)
	bv, bNum := numericValue(b)
	if aNum != bNum {
		return aNum
	}
	if aNum && av != bv {
		return av < bv
	}
	return a < b
}

// numericValue resolves a name to its numeric sort value.
func numericValue(name string) (int, bool) {
	if n, err := strconv.Atoi(name); err == nil {
		return n, true
	}
	if n, ok := romanNumerals[strings.ToUpper(name)]; ok {
		return n, true
	}
	return 0, false
}
