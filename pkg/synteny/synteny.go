// Package synteny intersects the marker sets of two assemblies and
// turns the shared markers into colored link records.
//
// A marker found Complete in both assemblies anchors one link between
// the chromosomes carrying it. Links inherit the color of their
// species one chromosome, so every ribbon fanning out of a chromosome
// shares its hue.
package synteny

import (
	"github.com/karyolab/synlink/pkg/busco"
	"github.com/karyolab/synlink/pkg/colormap"
	"github.com/karyolab/synlink/pkg/errors"
)

// Match is one marker placed in both assemblies.
type Match struct {
	MarkerID string
	Chr1     string
	Pos1     int
	Chr2     string
	Pos2     int
}

// Join intersects two marker sets on marker id. Matches keep the order
// markers appear in the first set, one row per marker id.
func Join(s1, s2 *busco.Set) []Match {
	idx := s2.Index()
	var matches []Match
	for _, m1 := range s1.Markers {
		m2, ok := idx[m1.ID]
		if !ok {
			continue
		}
		matches = append(matches, Match{
			MarkerID: m1.ID,
			Chr1:     m1.Chr,
			Pos1:     m1.Pos,
			Chr2:     m2.Chr,
			Pos2:     m2.Pos,
		})
	}
	return matches
}

// Chromosomes returns the species one chromosomes carrying at least
// one match.
func Chromosomes(matches []Match) map[string]bool {
	chrs := make(map[string]bool)
	for _, m := range matches {
		chrs[m.Chr1] = true
	}
	return chrs
}

// Link is one colored synteny record.
type Link struct {
	Chr1  string
	Pos1  int
	Chr2  string
	Pos2  int
	Color string
}

// Colorize attaches the species one chromosome color to every match,
// preserving match order. A match on a chromosome with no color
// assignment means the marker table and karyotype disagree, which is
// fatal.
func Colorize(matches []Match, colors *colormap.Assignment) ([]Link, error) {
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		color, ok := colors.Color(m.Chr1)
		if !ok {
			return nil, errors.NewUnmappedChromosomeError(m.Chr1)
		}
		links = append(links, Link{
			Chr1:  m.Chr1,
			Pos1:  m.Pos1,
			Chr2:  m.Chr2,
			Pos2:  m.Pos2,
			Color: color,
		})
	}
	return links, nil
}
