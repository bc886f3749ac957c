package karyotype

// DualRow is one row of the merged two-species karyotype table.
type DualRow struct {
	Chr     string
	Start   int
	End     int
	Species string
	Fill    string
	Label   string
}

// Merge concatenates two normalized karyotypes into one table, the
// species-1 block first, both blocks in rank order. Species-1 rows are
// filled from fills, falling back to neutral for chromosomes without a
// color. Species-2 rows always take the neutral fill. Every row is
// labeled with its chromosome name.
func Merge(k1, k2 *Karyotype, fills map[string]string, neutral string) []DualRow {
	rows := make([]DualRow, 0, k1.Len()+k2.Len())

	for _, c := range k1.Chromosomes {
		fill, ok := fills[c.Name]
		if !ok {
			fill = neutral
		}
		rows = append(rows, DualRow{
			Chr:     c.Name,
			Start:   c.Start,
			End:     c.End,
			Species: c.Species,
			Fill:    fill,
			Label:   c.Name,
		})
	}

	for _, c := range k2.Chromosomes {
		rows = append(rows, DualRow{
			Chr:     c.Name,
			Start:   c.Start,
			End:     c.End,
			Species: c.Species,
			Fill:    neutral,
			Label:   c.Name,
		})
	}

	return rows
}
