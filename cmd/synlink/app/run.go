package app

import (
	"github.com/spf13/cobra"

	"github.com/karyolab/synlink/internal/cmd/output"
	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/logging"
	"github.com/karyolab/synlink/pkg/pipeline"
)

// NewRunCommand creates the run command, the full pipeline.
func (a *App) NewRunCommand() *cobra.Command {
	var cfg pipeline.Config

	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Match markers and write the ideogram tables",
		Long: `Run loads both karyotypes and BUSCO full tables, applies the
chromosome name replacements, intersects the Complete markers and
writes the color maps, matched markers, synteny links and merged dual
karyotype into the output directory.

With --plot the RIdeogram script is generated and executed through
Rscript. A failed render is reported but does not fail the run; the
tables remain valid on their own.`,
		Example: `  synlink run \
    --karyotype1 pfas_karyotype.txt --karyotype2 tgut_karyotype.txt \
    --busco1 pfas_full_table.tsv --busco2 tgut_full_table.tsv \
    --rep1 pfas_rep.txt --rep2 tgut_rep.txt \
    --outdir results --plot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.Logger())

			res, err := pipeline.Run(ctx, cfg)
			if err != nil {
				return err
			}

			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))
			return formatter.Format(cmd.OutOrStdout(), *res)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Karyotype1, "karyotype1", "", "species one karyotype table (required)")
	flags.StringVar(&cfg.Karyotype2, "karyotype2", "", "species two karyotype table (required)")
	flags.StringVar(&cfg.Busco1, "busco1", "", "species one BUSCO/Compleasm full table (required)")
	flags.StringVar(&cfg.Busco2, "busco2", "", "species two BUSCO/Compleasm full table (required)")
	flags.StringVar(&cfg.Rep1, "rep1", "", "species one chromosome replacement map (required)")
	flags.StringVar(&cfg.Rep2, "rep2", "", "species two chromosome replacement map (required)")
	flags.StringVar(&cfg.OutDir, "outdir", "", "output directory (required)")
	flags.StringVar(&cfg.Colormap, "cmap", constants.DefaultColormap, "palette for chromosome colors")
	flags.BoolVar(&cfg.StrictRename, "strict-rename", false, "fail on chromosome names missing from a replacement map")
	flags.BoolVar(&cfg.Plot, "plot", false, "render the ideogram with RIdeogram after writing the tables")
	flags.StringVar(&cfg.ScriptPath, "rscript-path", constants.DefaultScriptName, "where to write the generated R script")
	flags.IntVar(&cfg.KaryoSize, "karyo-size", constants.DefaultKaryoSize, "chromosome label size in the figure")
	flags.StringVar(&cfg.KaryoColor, "karyo-color", constants.DefaultKaryoColor, "chromosome label color in the figure")

	for _, name := range []string{"karyotype1", "karyotype2", "busco1", "busco2", "rep1", "rep2", "outdir"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
