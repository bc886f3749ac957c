package render_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/render"
)

func TestScript(t *testing.T) {
	t.Run("bakes in an absolute working directory", func(t *testing.T) {
		dir := t.TempDir()
		src, err := render.Script(render.Options{OutDir: dir, KaryoSize: 5, KaryoColor: "black"})
		require.NoError(t, err)
		assert.Contains(t, src, `setwd("`+dir+`")`)
	})

	t.Run("injects label styling", func(t *testing.T) {
		src, err := render.Script(render.Options{OutDir: t.TempDir(), KaryoSize: 12, KaryoColor: "grey40"})
		require.NoError(t, err)
		assert.Contains(t, src, "size=12")
		assert.Contains(t, src, `color="grey40"`)
	})

	t.Run("defaults label styling", func(t *testing.T) {
		src, err := render.Script(render.Options{OutDir: t.TempDir()})
		require.NoError(t, err)
		assert.Contains(t, src, "size=5")
		assert.Contains(t, src, `color="black"`)
	})

	t.Run("reads the pipeline tables", func(t *testing.T) {
		src, err := render.Script(render.Options{OutDir: t.TempDir()})
		require.NoError(t, err)
		assert.Contains(t, src, `read.table("dual_karyotype.txt"`)
		assert.Contains(t, src, `read.table("final_synteny.txt"`)
		assert.Contains(t, src, `rsvg_png("chromosome.svg", "chromosome.png", width=1000)`)
	})

	t.Run("maps chromosome names to karyotype indexes", func(t *testing.T) {
		src, err := render.Script(render.Options{OutDir: t.TempDir()})
		require.NoError(t, err)
		assert.Contains(t, src, "Species_1=match(links$chr1, chr1)")
		assert.Contains(t, src, "Species_2=match(links$chr2, chr2)")
	})
}

func TestWriteScript(t *testing.T) {
	t.Run("default name lands in the output directory", func(t *testing.T) {
		dir := t.TempDir()
		path, err := render.WriteScript(render.Options{OutDir: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "plot_ideogram.R"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), `if (!requireNamespace("RIdeogram"`))
	})

	t.Run("relative script paths resolve under the output directory", func(t *testing.T) {
		dir := t.TempDir()
		path, err := render.WriteScript(render.Options{OutDir: dir, ScriptPath: "custom.R"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "custom.R"), path)
	})

	t.Run("absolute script paths are honored", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "elsewhere.R")
		path, err := render.WriteScript(render.Options{OutDir: t.TempDir(), ScriptPath: target})
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.FileExists(t, target)
	})
}

func TestRun(t *testing.T) {
	t.Run("missing interpreter", func(t *testing.T) {
		dir := t.TempDir()
		err := render.Run(context.Background(), render.Options{
			OutDir:     dir,
			RscriptBin: "rscript-binary-that-does-not-exist",
		})
		require.Error(t, err)
		assert.True(t, errors.IsRender(err))
		assert.FileExists(t, filepath.Join(dir, "plot_ideogram.R"))
	})

	t.Run("interpreter producing no image", func(t *testing.T) {
		err := render.Run(context.Background(), render.Options{
			OutDir:     t.TempDir(),
			RscriptBin: "true",
		})
		require.Error(t, err)
		assert.True(t, errors.IsRender(err))
		assert.Contains(t, err.Error(), "chromosome.png")
	})

	t.Run("interpreter producing the image", func(t *testing.T) {
		dir := t.TempDir()
		fake := filepath.Join(t.TempDir(), "fake-rscript")
		script := "#!/bin/sh\ntouch \"" + filepath.Join(dir, "chromosome.png") + "\"\n"
		require.NoError(t, os.WriteFile(fake, []byte(script), 0o755))

		err := render.Run(context.Background(), render.Options{OutDir: dir, RscriptBin: fake})
		assert.NoError(t, err)
	})
}
