// Package render generates the RIdeogram plotting script and runs it
// through Rscript.
//
// The R toolchain is treated as a black box. The generated script
// reshapes the pipeline's dual karyotype and synteny tables into the
// data frames RIdeogram expects, draws chromosome.svg and converts it
// to chromosome.png. Render reports failures but callers decide
// whether a missing plot matters; the tables stand on their own.
package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/karyolab/synlink/pkg/constants"
	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/logging"
)

// Options configure script generation and execution.
type Options struct {
	// OutDir is the directory holding the pipeline tables and
	// receiving the rendered images.
	OutDir string

	// ScriptPath is where the R script is written. Relative paths
	// resolve under OutDir.
	ScriptPath string

	// KaryoSize and KaryoColor style the chromosome labels.
	KaryoSize  int
	KaryoColor string

	// RscriptBin overrides the Rscript executable name.
	RscriptBin string
}

// scriptPath resolves the script location.
func (o Options) scriptPath() string {
	path := o.ScriptPath
	if path == "" {
		path = constants.DefaultScriptName
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.OutDir, path)
}

// bin resolves the Rscript executable.
func (o Options) bin() string {
	if o.RscriptBin != "" {
		return o.RscriptBin
	}
	return "Rscript"
}

// scriptTemplate reshapes the pipeline tables into RIdeogram frames.
// Chromosome names are forced to character on both sides so integer
// looking names survive the index lookup.
const scriptTemplate = `if (!requireNamespace("RIdeogram", quietly=TRUE)) {
  if (!requireNamespace("devtools", quietly=TRUE)) install.packages("devtools")
  devtools::install_github("TickingClock1992/RIdeogram")
}
library(RIdeogram)
if (!requireNamespace("rsvg", quietly=TRUE)) install.packages("rsvg")
library(rsvg)

setwd("%s")

kary <- read.table("%s", header=TRUE, sep="\t",
                   colClasses=c("character", "integer", "integer", "character", "character", "character"))
links <- read.table("%s", header=TRUE, sep="\t",
                    colClasses=c("character", "integer", "character", "integer", "character"))

species <- unique(kary$Species)
chr1 <- kary$Chr[kary$Species == species[1]]
chr2 <- kary$Chr[kary$Species == species[2]]

karyotype <- data.frame(
  Chr=kary$Chr, Start=kary$Start, End=kary$End,
  fill=kary$Fill, species=kary$Species, size=%d, color="%s",
  stringsAsFactors=FALSE
)
synt <- data.frame(
  Species_1=match(links$chr1, chr1), Start_1=links$pos1, End_1=links$pos1,
  Species_2=match(links$chr2, chr2), Start_2=links$pos2, End_2=links$pos2,
  fill=links$Color, stringsAsFactors=FALSE
)

ideogram(karyotype=karyotype, synteny=synt)
rsvg_png("%s", "%s", width=1000)
`

// Script returns the R source for the given options. The working
// directory baked into the script is absolute so Rscript can run from
// anywhere.
func Script(opts Options) (string, error) {
	dir, err := filepath.Abs(opts.OutDir)
	if err != nil {
		return "", errors.WrapIO("resolve", opts.OutDir, err)
	}
	size := opts.KaryoSize
	if size == 0 {
		size = constants.DefaultKaryoSize
	}
	color := opts.KaryoColor
	if color == "" {
		color = constants.DefaultKaryoColor
	}
	return fmt.Sprintf(scriptTemplate,
		rEscape(dir),
		constants.DualKaryotypeFile,
		constants.FinalSyntenyFile,
		size,
		rEscape(color),
		constants.RenderedSVGFile,
		constants.RenderedPNGFile,
	), nil
}

// WriteScript writes the rendering script and returns its path.
func WriteScript(opts Options) (string, error) {
	src, err := Script(opts)
	if err != nil {
		return "", err
	}
	path := opts.scriptPath()
	if err := os.WriteFile(path, []byte(src), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// Run writes the script and executes it with Rscript. The run is
// considered failed when Rscript exits non zero or the PNG is missing
// afterwards.
func Run(ctx context.Context, opts Options) error {
	script, err := WriteScript(opts)
	if err != nil {
		return err
	}

	bin := opts.bin()
	if _, err := exec.LookPath(bin); err != nil {
		return errors.WrapRender(script, bin, err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RenderTimeout)
	defer cancel()

	logging.FromContext(ctx).Debug().
		Str("script", script).
		Str("bin", bin).
		Msg("running render script")

	cmd := exec.CommandContext(ctx, bin, script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.NewRenderError(script, bin+" "+script, string(out), err)
	}

	png := filepath.Join(opts.OutDir, constants.RenderedPNGFile)
	if _, err := os.Stat(png); err != nil {
		return errors.NewRenderError(script, bin+" "+script, string(out),
			errors.New("render produced no "+constants.RenderedPNGFile))
	}
	return nil
}

// rEscape escapes a Go string for use inside a double quoted R string.
func rEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
