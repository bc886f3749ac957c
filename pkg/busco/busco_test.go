package busco_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyolab/synlink/pkg/busco"
	"github.com/karyolab/synlink/pkg/errors"
	"github.com/karyolab/synlink/pkg/rename"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "full_table.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fullTable = "# BUSCO version is: 5.4.7\n" +
	"# The lineage dataset is: saccharomycetes_odb10\n" +
	"# Busco id\tStatus\tSequence\tGene Start\tGene End\tStrand\tScore\tLength\n" +
	"10at4751\tComplete\tchr1\t100\t900\t+\t50.1\t800\n" +
	"22at4751\tComplete\tchr2\t5.0\t300\t-\t60.2\t295\n" +
	"31at4751\tMissing\n" +
	"47at4751\tFragmented\tchr1\t400\t500\t+\t10.0\t100\n" +
	"58at4751\tDuplicated\tchr2\t600\t700\t+\t20.0\t100\n"

func TestLoad(t *testing.T) {
	t.Run("keeps complete rows in file order", func(t *testing.T) {
		set, err := busco.Load(writeTemp(t, fullTable), nil)
		require.NoError(t, err)
		require.Equal(t, 2, set.Len())
		assert.Equal(t, busco.Marker{ID: "10at4751", Chr: "chr1", Pos: 100}, set.Markers[0])
		assert.Equal(t, busco.Marker{ID: "22at4751", Chr: "chr2", Pos: 5}, set.Markers[1])
	})

	t.Run("lowercases marker ids", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\tGene Start\n" +
			"10AT4751\tComplete\tchr1\t100\n"
		set, err := busco.Load(writeTemp(t, content), nil)
		require.NoError(t, err)
		assert.Equal(t, "10at4751", set.Markers[0].ID)
	})

	t.Run("duplicate ids keep first occurrence", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\tGene Start\n" +
			"10at4751\tComplete\tchr1\t100\n" +
			"10AT4751\tComplete\tchr2\t999\n"
		set, err := busco.Load(writeTemp(t, content), nil)
		require.NoError(t, err)
		require.Equal(t, 1, set.Len())
		assert.Equal(t, "chr1", set.Markers[0].Chr)
	})

	t.Run("contig column fallback", func(t *testing.T) {
		content := "# Busco id\tStatus\tContig\tGene Start\n" +
			"10at4751\tComplete\tctg7\t42\n"
		set, err := busco.Load(writeTemp(t, content), nil)
		require.NoError(t, err)
		assert.Equal(t, "ctg7", set.Markers[0].Chr)
	})

	t.Run("renames chromosomes", func(t *testing.T) {
		reps := rename.NewMap(1, map[string]string{"chr1": "1", "chr2": "2"})
		set, err := busco.Load(writeTemp(t, fullTable), reps)
		require.NoError(t, err)
		assert.Equal(t, "1", set.Markers[0].Chr)
		assert.Equal(t, "2", set.Markers[1].Chr)
	})

	t.Run("strict rename fails on unmapped chromosome", func(t *testing.T) {
		reps := rename.NewMap(1, map[string]string{"chr1": "1"})
		reps.Strict = true

		_, err := busco.Load(writeTemp(t, fullTable), reps)
		require.Error(t, err)
		assert.True(t, errors.IsMissingMapping(err))
		assert.Contains(t, err.Error(), "chr2")
	})

	t.Run("float positions truncate", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\tGene Start\n" +
			"10at4751\tComplete\tchr1\t123.9\n"
		set, err := busco.Load(writeTemp(t, content), nil)
		require.NoError(t, err)
		assert.Equal(t, 123, set.Markers[0].Pos)
	})

	t.Run("bad position reports the line", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\tGene Start\n" +
			"10at4751\tComplete\tchr1\tabc\n"
		_, err := busco.Load(writeTemp(t, content), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Gene Start is not numeric")
		assert.Contains(t, err.Error(), ":2")
	})

	t.Run("missing header", func(t *testing.T) {
		content := "# BUSCO version is: 5.4.7\n10at4751\tComplete\n"
		_, err := busco.Load(writeTemp(t, content), nil)
		require.Error(t, err)
		assert.True(t, errors.IsSchema(err))
		assert.Contains(t, err.Error(), "header not found")
	})

	t.Run("missing required column", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\n" +
			"10at4751\tComplete\tchr1\n"
		_, err := busco.Load(writeTemp(t, content), nil)
		require.Error(t, err)
		assert.True(t, errors.IsSchema(err))
		assert.Contains(t, err.Error(), "Gene Start")
	})

	t.Run("no complete rows yields an empty set", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\tGene Start\n" +
			"10at4751\tMissing\n" +
			"22at4751\tFragmented\tchr1\t400\n"
		set, err := busco.Load(writeTemp(t, content), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("truncated complete row fails", func(t *testing.T) {
		content := "# Busco id\tStatus\tSequence\tGene Start\n" +
			"10at4751\tComplete\tchr1\n"
		_, err := busco.Load(writeTemp(t, content), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad field count")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := busco.Load(filepath.Join(t.TempDir(), "nope.tsv"), nil)
		require.Error(t, err)
	})
}

func TestIndex(t *testing.T) {
	set, err := busco.Load(writeTemp(t, fullTable), nil)
	require.NoError(t, err)

	idx := set.Index()
	require.Len(t, idx, 2)
	assert.Equal(t, busco.Marker{ID: "22at4751", Chr: "chr2", Pos: 5}, idx["22at4751"])
}
