// Package pipeline wires the loading, matching, coloring and writing
// stages into the single run the CLI exposes.
//
// A run loads both karyotypes and both marker tables, applies the
// chromosome name replacements, intersects the marker sets, assigns
// palette colors to the species one chromosomes that carry matches and
// writes the ideogram tables. Rendering is optional and its failure
// never invalidates the tables already on disk.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/karyolab/synlink/pkg/busco"
	"github.com/karyolab/synlink/pkg/colormap"
	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/karyotype"
	"github.com/karyolab/synlink/pkg/logging"
	"github.com/karyolab/synlink/pkg/rename"
	"github.com/karyolab/synlink/pkg/render"
	"github.com/karyolab/synlink/pkg/synteny"
)

// Config holds every input and knob of one pipeline run.
type Config struct {
	// Karyotype1 and Karyotype2 are the per-species chromosome tables.
	Karyotype1 string
	Karyotype2 string

	// Busco1 and Busco2 are the BUSCO or Compleasm full tables.
	Busco1 string
	Busco2 string

	// Rep1 and Rep2 are the chromosome name replacement maps.
	Rep1 string
	Rep2 string

	// OutDir receives every output table. Created when missing.
	OutDir string

	// Colormap names the palette sampled for chromosome colors.
	Colormap string

	// StrictRename fails the run on chromosome names absent from
	// their replacement map instead of passing them through.
	StrictRename bool

	// Plot renders the ideogram after the tables are written.
	Plot bool

	// ScriptPath is where the R script is written. Relative paths
	// resolve under OutDir.
	ScriptPath string

	// KaryoSize and KaryoColor style the chromosome labels.
	KaryoSize  int
	KaryoColor string

	// RscriptBin overrides the Rscript executable, for tests and
	// unusual R installs.
	RscriptBin string
}

// normalize fills unset knobs with their defaults.
func (c *Config) normalize() {
	if c.Colormap == "" {
		c.Colormap = constants.DefaultColormap
	}
	if c.ScriptPath == "" {
		c.ScriptPath = constants.DefaultScriptName
	}
	if c.KaryoSize == 0 {
		c.KaryoSize = constants.DefaultKaryoSize
	}
	if c.KaryoColor == "" {
		c.KaryoColor = constants.DefaultKaryoColor
	}
}

// Validate checks that every required input is set and the palette is
// known.
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"karyotype1", c.Karyotype1},
		{"karyotype2", c.Karyotype2},
		{"busco1", c.Busco1},
		{"busco2", c.Busco2},
		{"rep1", c.Rep1},
		{"rep2", c.Rep2},
		{"outdir", c.OutDir},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.NewValidationError(r.field, r.value, "required")
		}
	}
	if c.Colormap != "" && !colormap.Known(c.Colormap) {
		return errors.NewValidationError("cmap", c.Colormap,
			"unknown colormap (known: "+strings.Join(colormap.Names(), ", ")+")")
	}
	if c.KaryoSize < 0 {
		return errors.NewValidationError("karyo-size", c.KaryoSize, "must not be negative")
	}
	return nil
}

// Result summarizes one pipeline run.
type Result struct {
	Chromosomes1 int `json:"chromosomes1" yaml:"chromosomes1"`
	Chromosomes2 int `json:"chromosomes2" yaml:"chromosomes2"`
	Markers1     int `json:"markers1" yaml:"markers1"`
	Markers2     int `json:"markers2" yaml:"markers2"`
	Matches      int `json:"matches" yaml:"matches"`
	Colored      int `json:"colored" yaml:"colored"`

	// MissingMappings counts distinct chromosome names that passed
	// through a replacement map unmapped.
	MissingMappings int `json:"missing_mappings" yaml:"missing_mappings"`

	OutDir string   `json:"outdir" yaml:"outdir"`
	Files  []string `json:"files" yaml:"files"`

	Rendered    bool   `json:"rendered" yaml:"rendered"`
	RenderError string `json:"render_error,omitempty" yaml:"render_error,omitempty"`

	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Run executes the pipeline. The returned error is fatal; render
// failures are reported through the Result instead.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	start := time.Now()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	rep1, err := rename.Load(cfg.Rep1, 1)
	if err != nil {
		return nil, err
	}
	rep1.Strict = cfg.StrictRename
	rep2, err := rename.Load(cfg.Rep2, 2)
	if err != nil {
		return nil, err
	}
	rep2.Strict = cfg.StrictRename
	log.Debug().
		Int("rep1", rep1.Len()).
		Int("rep2", rep2.Len()).
		Bool("strict", cfg.StrictRename).
		Msg("loaded replacement maps")

	k1, err := karyotype.Load(cfg.Karyotype1, rep1)
	if err != nil {
		return nil, err
	}
	k2, err := karyotype.Load(cfg.Karyotype2, rep2)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("species1", k1.Len()).
		Int("species2", k2.Len()).
		Msg("loaded karyotypes")

	s1, err := busco.Load(cfg.Busco1, rep1)
	if err != nil {
		return nil, err
	}
	s2, err := busco.Load(cfg.Busco2, rep2)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("species1", s1.Len()).
		Int("species2", s2.Len()).
		Msg("loaded marker tables")

	for _, name := range rep1.Misses() {
		log.Warn().Int("species", 1).Str("chr", name).Msg("no replacement mapping")
	}
	for _, name := range rep2.Misses() {
		log.Warn().Int("species", 2).Str("chr", name).Msg("no replacement mapping")
	}

	matches := synteny.Join(s1, s2)
	log.Info().Int("matches", len(matches)).Msg("matched markers")

	colors, err := colormap.Assign(cfg.Colormap, k1, synteny.Chromosomes(matches))
	if err != nil {
		return nil, err
	}
	links, err := synteny.Colorize(matches, colors)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("palette", cfg.Colormap).
		Int("chromosomes", colors.Len()).
		Msg("assigned colors")

	dual := karyotype.Merge(k1, k2, colors.Fills(), constants.NeutralFill)

	if err := os.MkdirAll(cfg.OutDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("mkdir", cfg.OutDir, err)
	}
	files, err := writeTables(cfg.OutDir, colors, matches, links, dual)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("files", len(files)).
		Str("outdir", cfg.OutDir).
		Msg("wrote tables")

	res := &Result{
		Chromosomes1:    k1.Len(),
		Chromosomes2:    k2.Len(),
		Markers1:        s1.Len(),
		Markers2:        s2.Len(),
		Matches:         len(matches),
		Colored:         colors.Len(),
		MissingMappings: len(rep1.Misses()) + len(rep2.Misses()),
		OutDir:          cfg.OutDir,
		Files:           files,
	}

	if cfg.Plot {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, filepath.Base(cfg.ScriptPath))
		err := render.Run(ctx, render.Options{
			OutDir:     cfg.OutDir,
			ScriptPath: cfg.ScriptPath,
			KaryoSize:  cfg.KaryoSize,
			KaryoColor: cfg.KaryoColor,
			RscriptBin: cfg.RscriptBin,
		})
		if err != nil {
			log.Error().Err(err).Msg("render failed")
			res.RenderError = err.Error()
		} else {
			res.Rendered = true
			res.Files = append(res.Files, constants.RenderedSVGFile, constants.RenderedPNGFile)
			log.Info().Str("png", filepath.Join(cfg.OutDir, constants.RenderedPNGFile)).Msg("rendered ideogram")
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
