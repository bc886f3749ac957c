// Package colormap provides deterministic color sampling from named
// palettes and assigns colors to karyotype chromosomes.
//
// Each palette is a list of anchor colors spaced evenly across [0, 1].
// Sampling interpolates linearly between anchors, so a given palette
// name and sample count always produce the same colors. The anchor
// values follow the matplotlib perceptually uniform families, which is
// what downstream ideogram tooling expects.
package colormap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/karyotype"
)

// palettes holds the anchor colors of every known palette, dark to
// light, as hex without the leading '#'.
var palettes = map[string][]string{
	"viridis": {
		"440154", "482878", "3e4989", "31688e", "26828e",
		"1f9e89", "35b779", "6ece58", "b5de2b", "fde725",
	},
	"plasma": {
		"0d0887", "46039f", "7201a8", "9c179e", "bd3786",
		"d8576b", "ed7953", "fb9f3a", "fdca26", "f0f921",
	},
	"magma": {
		"000004", "180f3d", "440f76", "721f81", "9e2f7f",
		"cd4071", "f1605d", "fd9668", "feca8d", "fcfdbf",
	},
	"inferno": {
		"000004", "1b0c41", "4a0c6b", "781c6d", "a52c60",
		"cf4446", "ed6925", "fb9b06", "f7d03c", "fcffa4",
	},
	"cividis": {
		"00224e", "123570", "3b496c", "575d6d", "707173",
		"8a8678", "a59c74", "c3b369", "e1cc55", "fee838",
	},
}

// Known reports whether name is a known palette.
func Known(name string) bool {
	_, ok := palettes[name]
	return ok
}

// Names returns the known palette names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample returns n evenly spaced colors from the named palette as
// lowercase hex without the leading '#'. A single sample takes the
// first anchor; zero samples return an empty slice.
func Sample(name string, n int) ([]string, error) {
	anchors, ok := palettes[name]
	if !ok {
		return nil, errors.NewValidationError("cmap", name,
			"unknown colormap (known: "+strings.Join(Names(), ", ")+")")
	}
	if n < 0 {
		return nil, errors.NewValidationError("count", n, "sample count must not be negative")
	}
	if n == 0 {
		return []string{}, nil
	}

	colors := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = interpolate(anchors, t)
	}
	return colors, nil
}

// Entry pairs one colored chromosome with its palette color.
type Entry struct {
	Chr   string
	Rank  int
	Color string
}

// Assignment is a deterministic chromosome to color mapping for one
// karyotype, ordered by rank.
type Assignment struct {
	Palette string
	Entries []Entry

	byChr map[string]string
}

// Assign samples the named palette across the chromosomes of k that
// appear in matched, in rank order. Chromosomes without matched
// markers receive no color.
func Assign(name string, k *karyotype.Karyotype, matched map[string]bool) (*Assignment, error) {
	var selected []karyotype.Chromosome
	for _, c := range k.Chromosomes {
		if matched[c.Name] {
			selected = append(selected, c)
		}
	}

	colors, err := Sample(name, len(selected))
	if err != nil {
		return nil, err
	}

	a := &Assignment{
		Palette: name,
		Entries: make([]Entry, len(selected)),
		byChr:   make(map[string]string, len(selected)),
	}
	for i, c := range selected {
		a.Entries[i] = Entry{Chr: c.Name, Rank: c.Rank, Color: colors[i]}
		a.byChr[c.Name] = colors[i]
	}
	return a, nil
}

// Color returns the color assigned to chr.
func (a *Assignment) Color(chr string) (string, bool) {
	c, ok := a.byChr[chr]
	return c, ok
}

// Len returns the number of colored chromosomes.
func (a *Assignment) Len() int {
	return len(a.Entries)
}

// Fills returns the chromosome to color map.
func (a *Assignment) Fills() map[string]string {
	fills := make(map[string]string, len(a.byChr))
	for chr, color := range a.byChr {
		fills[chr] = color
	}
	return fills
}

// interpolate evaluates the anchor gradient at t in [0, 1].
func interpolate(anchors []string, t float64) string {
	if t <= 0 {
		return anchors[0]
	}
	if t >= 1 {
		return anchors[len(anchors)-1]
	}

	x := t * float64(len(anchors)-1)
	i := int(x)
	frac := x - float64(i)
	if frac == 0 {
		return anchors[i]
	}

	lr, lg, lb := splitHex(anchors[i])
	hr, hg, hb := splitHex(anchors[i+1])
	return fmt.Sprintf("%02x%02x%02x",
		blend(lr, hr, frac), blend(lg, hg, frac), blend(lb, hb, frac))
}

// blend mixes one channel of two anchor colors.
func blend(lo, hi uint8, frac float64) uint8 {
	return uint8(math.Round(float64(lo) + frac*(float64(hi)-float64(lo))))
}

// splitHex parses a six digit hex color into channels. Palette anchors
// are compile time constants, so parse failures cannot happen.
func splitHex(s string) (r, g, b uint8) {
	rv, _ := strconv.ParseUint(s[0:2], 16, 8)
	gv, _ := strconv.ParseUint(s[2:4], 16, 8)
	bv, _ := strconv.ParseUint(s[4:6], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv)
}
