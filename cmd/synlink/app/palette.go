package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/karyolab/synlink/internal/cmd/output"
	"github.com/karyolab/synlink/pkg/colormap"
	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/karyotype"
	"github.com/karyolab/synlink/pkg/rename"
)

// paletteColor is one sampled color, shaped like a color_replace row.
type paletteColor struct {
	Rank  int    `json:"rank"`
	Color string `json:"color"`
}

// palettePreview is one palette with a short sample.
type palettePreview struct {
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

// chromosomeColor is one karyotype chromosome with its assigned color.
type chromosomeColor struct {
	Chr   string `json:"chr"`
	Rank  int    `json:"rank"`
	Color string `json:"color"`
}

// NewPaletteCommand creates the palette command.
func (a *App) NewPaletteCommand() *cobra.Command {
	var (
		count         int
		karyotypePath string
		repPath       string
	)

	cmd := &cobra.Command{
		Use:     "palette [name]",
		GroupID: "tools",
		Short:   "List palettes or sample colors from one",
		Long: `Palette lists the known palettes, or samples evenly spaced colors
from one of them. The sampled colors are exactly those a run with the
same palette and the same number of matched chromosomes would assign,
in rank order.

With --karyotype the colors are assigned to the chromosomes of a real
karyotype instead, every chromosome counted as matched.`,
		Example: `  synlink palette
  synlink palette plasma
  synlink palette viridis -n 24
  synlink palette viridis --karyotype pfas_karyotype.txt --rep pfas_replace.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))

			if karyotypePath != "" {
				name := constants.DefaultColormap
				if len(args) > 0 {
					name = args[0]
				}
				rows, err := assignToKaryotype(name, karyotypePath, repPath)
				if err != nil {
					return err
				}
				return formatter.Format(cmd.OutOrStdout(), rows)
			}

			if len(args) == 0 {
				previews := make([]palettePreview, 0, len(colormap.Names()))
				for _, name := range colormap.Names() {
					sample, err := colormap.Sample(name, 5)
					if err != nil {
						return err
					}
					previews = append(previews, palettePreview{
						Name:    name,
						Preview: strings.Join(sample, " "),
					})
				}
				return formatter.Format(cmd.OutOrStdout(), previews)
			}

			colors, err := colormap.Sample(args[0], count)
			if err != nil {
				return err
			}
			rows := make([]paletteColor, len(colors))
			for i, c := range colors {
				rows[i] = paletteColor{Rank: i + 1, Color: c}
			}
			return formatter.Format(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of colors to sample")
	cmd.Flags().StringVar(&karyotypePath, "karyotype", "", "karyotype file to assign colors to")
	cmd.Flags().StringVar(&repPath, "rep", "", "replacement map applied to the karyotype")

	return cmd
}

// assignToKaryotype colors every chromosome of the karyotype at path as a
// pipeline run with full marker coverage would.
func assignToKaryotype(name, path, repPath string) ([]chromosomeColor, error) {
	var reps *rename.Map
	if repPath != "" {
		var err error
		reps, err = rename.Load(repPath, 1)
		if err != nil {
			return nil, err
		}
	}

	k, err := karyotype.Load(path, reps)
	if err != nil {
		return nil, err
	}

	matched := make(map[string]bool, k.Len())
	for _, chr := range k.Names() {
		matched[chr] = true
	}

	asn, err := colormap.Assign(name, k, matched)
	if err != nil {
		return nil, err
	}

	rows := make([]chromosomeColor, len(asn.Entries))
	for i, e := range asn.Entries {
		rows[i] = chromosomeColor{Chr: e.Chr, Rank: e.Rank, Color: e.Color}
	}
	return rows, nil
}
