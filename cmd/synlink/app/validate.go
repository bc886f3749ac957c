package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karyolab/synlink/internal/cmd/output"
	"github.com/karyolab/synlink/pkg/busco"
	"github.com/karyolab/synlink/pkg/colormap"
	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/karyotype"
	"github.com/karyolab/synlink/pkg/rename"
)

// checkRow is the validation verdict for one input.
type checkRow struct {
	Input  string `json:"input"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// NewValidateCommand creates the validate command. It loads every
// input the way run would, without writing anything.
func (a *App) NewValidateCommand() *cobra.Command {
	var (
		karyotype1, karyotype2 string
		busco1, busco2         string
		rep1, rep2             string
		cmap                   string
		strict                 bool
	)

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "tools",
		Short:   "Check pipeline inputs without writing outputs",
		Long: `Validate parses both karyotypes, both BUSCO full tables and both
replacement maps exactly the way run would, and reports a verdict per
input. Nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []checkRow
			failed := 0
			add := func(input, path string, detail string, err error) {
				row := checkRow{Input: input, Path: path, Status: "ok", Detail: detail}
				if err != nil {
					row.Status = "failed"
					row.Detail = err.Error()
					failed++
				}
				rows = append(rows, row)
			}

			reps1, err := rename.Load(rep1, 1)
			add("rep1", rep1, fmt.Sprintf("%d replacements", reps1.Len()), err)
			if reps1 != nil {
				reps1.Strict = strict
			}
			reps2, err := rename.Load(rep2, 2)
			add("rep2", rep2, fmt.Sprintf("%d replacements", reps2.Len()), err)
			if reps2 != nil {
				reps2.Strict = strict
			}

			k1, err := karyotype.Load(karyotype1, reps1)
			add("karyotype1", karyotype1, chromosomeCount(k1), err)
			k2, err := karyotype.Load(karyotype2, reps2)
			add("karyotype2", karyotype2, chromosomeCount(k2), err)

			s1, err := busco.Load(busco1, reps1)
			add("busco1", busco1, markerCount(s1), err)
			s2, err := busco.Load(busco2, reps2)
			add("busco2", busco2, markerCount(s2), err)

			if colormap.Known(cmap) {
				add("cmap", "", cmap, nil)
			} else {
				add("cmap", "", "", errors.NewValidationError("cmap", cmap, "unknown colormap"))
			}

			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))
			if err := formatter.Format(cmd.OutOrStdout(), rows); err != nil {
				return err
			}
			if failed > 0 {
				return errors.NewValidationError("inputs", failed,
					fmt.Sprintf("%d of %d inputs failed validation", failed, len(rows)))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&karyotype1, "karyotype1", "", "species one karyotype table (required)")
	flags.StringVar(&karyotype2, "karyotype2", "", "species two karyotype table (required)")
	flags.StringVar(&busco1, "busco1", "", "species one BUSCO/Compleasm full table (required)")
	flags.StringVar(&busco2, "busco2", "", "species two BUSCO/Compleasm full table (required)")
	flags.StringVar(&rep1, "rep1", "", "species one chromosome replacement map (required)")
	flags.StringVar(&rep2, "rep2", "", "species two chromosome replacement map (required)")
	flags.StringVar(&cmap, "cmap", constants.DefaultColormap, "palette for chromosome colors")
	flags.BoolVar(&strict, "strict-rename", false, "fail on chromosome names missing from a replacement map")

	for _, name := range []string{"karyotype1", "karyotype2", "busco1", "busco2", "rep1", "rep2"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func chromosomeCount(k *karyotype.Karyotype) string {
	if k == nil {
		return ""
	}
	return fmt.Sprintf("%d chromosomes", k.Len())
}

func markerCount(s *busco.Set) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%d complete markers", s.Len())
}
