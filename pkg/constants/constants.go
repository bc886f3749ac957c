// Package constants collects the values shared across synlink: pipeline
// defaults, file permissions and the fixed names of the output files.
package constants

import "time"

// RenderTimeout bounds a single external renderer invocation.
const RenderTimeout = 5 * time.Minute

// Permissions for everything the pipeline creates.
const (
	// DirPermissions is the mode for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the mode for created files (rw-r--r--)
	FilePermissions = 0644
)

// Pipeline defaults used when no explicit configuration is given
const (
	// DefaultColormap is the color scale sampled for chromosome colors
	DefaultColormap = "plasma"

	// DefaultKaryoSize is the label text size passed to the renderer
	DefaultKaryoSize = 5

	// DefaultKaryoColor is the label text color passed to the renderer
	DefaultKaryoColor = "black"

	// DefaultScriptName is the file name of the generated rendering script
	DefaultScriptName = "plot_ideogram.R"

	// NeutralFill is the fill for chromosomes that receive no palette color
	NeutralFill = "cccccc"
)

// Output file names. Every run writes the same fixed set into the
// output directory.
const (
	// ChrColorMapFile maps chromosome names to colors
	ChrColorMapFile = "chr_color_map.txt"

	// ColorReplaceFile maps chromosome ranks to colors
	ColorReplaceFile = "color_replace.txt"

	// MergedBuscoFile holds marker pairs shared between both species
	MergedBuscoFile = "merged_busco.txt"

	// FinalSyntenyFile holds colored cross-species links
	FinalSyntenyFile = "final_synteny.txt"

	// DualKaryotypeFile holds the combined two-species karyotype
	DualKaryotypeFile = "dual_karyotype.txt"

	// RenderedSVGFile is the vector plot produced by the renderer
	RenderedSVGFile = "chromosome.svg"

	// RenderedPNGFile is the raster plot produced by the renderer
	RenderedPNGFile = "chromosome.png"
)
