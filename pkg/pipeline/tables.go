package pipeline

import (
	"path/filepath"
	"strconv"

	"github.com/karyolab/synlink/internal/tsv"
	"github.com/karyolab/synlink/pkg/colormap"
	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/karyotype"
	"github.com/karyolab/synlink/pkg/synteny"
)

// writeTables writes the five output tables into dir and returns their
// names in write order.
func writeTables(dir string, colors *colormap.Assignment, matches []synteny.Match, links []synteny.Link, dual []karyotype.DualRow) ([]string, error) {
	writers := []struct {
		name  string
		write func(path string) error
	}{
		{constants.ChrColorMapFile, func(p string) error { return writeChrColorMap(p, colors) }},
		{constants.ColorReplaceFile, func(p string) error { return writeColorReplace(p, colors) }},
		{constants.MergedBuscoFile, func(p string) error { return writeMergedBusco(p, matches) }},
		{constants.FinalSyntenyFile, func(p string) error { return writeFinalSynteny(p, links) }},
		{constants.DualKaryotypeFile, func(p string) error { return writeDualKaryotype(p, dual) }},
	}

	files := make([]string, 0, len(writers))
	for _, w := range writers {
		if err := w.write(filepath.Join(dir, w.name)); err != nil {
			return nil, err
		}
		files = append(files, w.name)
	}
	return files, nil
}

// writeChrColorMap writes the chromosome to color table in rank order.
func writeChrColorMap(path string, colors *colormap.Assignment) error {
	rows := make([][]string, 0, colors.Len())
	for _, e := range colors.Entries {
		rows = append(rows, []string{e.Chr, e.Color})
	}
	return tsv.WriteFile(path, []string{"Chr", "Color"}, rows)
}

// writeColorReplace writes the rank to color legend.
func writeColorReplace(path string, colors *colormap.Assignment) error {
	rows := make([][]string, 0, colors.Len())
	for _, e := range colors.Entries {
		rows = append(rows, []string{strconv.Itoa(e.Rank), e.Color})
	}
	return tsv.WriteFile(path, []string{"Rank", "Color"}, rows)
}

// writeMergedBusco writes one row per marker found in both assemblies.
func writeMergedBusco(path string, matches []synteny.Match) error {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			m.MarkerID,
			m.Chr1, strconv.Itoa(m.Pos1),
			m.Chr2, strconv.Itoa(m.Pos2),
		})
	}
	return tsv.WriteFile(path, []string{"marker_id", "chr1", "pos1", "chr2", "pos2"}, rows)
}

// writeFinalSynteny writes the colored link table the renderer reads.
func writeFinalSynteny(path string, links []synteny.Link) error {
	rows := make([][]string, 0, len(links))
	for _, l := range links {
		rows = append(rows, []string{
			l.Chr1, strconv.Itoa(l.Pos1),
			l.Chr2, strconv.Itoa(l.Pos2),
			l.Color,
		})
	}
	return tsv.WriteFile(path, []string{"chr1", "pos1", "chr2", "pos2", "Color"}, rows)
}

// writeDualKaryotype writes both species blocks with their fills.
func writeDualKaryotype(path string, dual []karyotype.DualRow) error {
	rows := make([][]string, 0, len(dual))
	for _, r := range dual {
		rows = append(rows, []string{
			r.Chr,
			strconv.Itoa(r.Start), strconv.Itoa(r.End),
			r.Species, r.Fill, r.Label,
		})
	}
	return tsv.WriteFile(path, []string{"Chr", "Start", "End", "Species", "Fill", "Label"}, rows)
}
