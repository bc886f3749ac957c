package tsv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyolab/synlink/internal/tsv"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFields(t *testing.T) {
	t.Run("tab split", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, tsv.Fields("a\tb\tc"))
	})

	t.Run("preserves embedded spaces", func(t *testing.T) {
		assert.Equal(t, []string{"# Busco id", "Status"}, tsv.Fields("# Busco id\tStatus"))
	})

	t.Run("strips carriage return", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, tsv.Fields("a\tb\r"))
	})
}

func TestLooseFields(t *testing.T) {
	assert.Equal(t, []string{"chr1", "1", "100"}, tsv.LooseFields("chr1  1\t100"))
	assert.Empty(t, tsv.LooseFields("   \r"))
}

func TestScanner(t *testing.T) {
	sc := tsv.NewScanner(strings.NewReader("one\ntwo\nthree\n"), "input.txt")

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, 3, sc.Line())
	assert.Equal(t, "input.txt", sc.Path())
}

func TestReadTable(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		path := writeTemp(t, "k.txt", "Chr\tStart\tEnd\tSpecies\nchr1\t1\t100\tpfas\nchr2\t1\t50\tpfas\n")

		table, err := tsv.ReadTable(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Chr", "Start", "End", "Species"}, table.Header)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, []string{"chr1", "1", "100", "pfas"}, table.Rows[0])
	})

	t.Run("skips blank lines", func(t *testing.T) {
		path := writeTemp(t, "k.txt", "Chr\tStart\n\nchr1\t1\n\n")

		table, err := tsv.ReadTable(path)
		require.NoError(t, err)
		assert.Len(t, table.Rows, 1)
		assert.Equal(t, []int{3}, table.Lines)
	})

	t.Run("records source lines", func(t *testing.T) {
		path := writeTemp(t, "k.txt", "Chr\tStart\nchr1\t1\nchr2\t2\n")

		table, err := tsv.ReadTable(path)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, table.Lines)
	})

	t.Run("space delimited input", func(t *testing.T) {
		path := writeTemp(t, "k.txt", "Chr Start End Species\nchr1 1 100 pfas\n")

		table, err := tsv.ReadTable(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"chr1", "1", "100", "pfas"}, table.Rows[0])
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTemp(t, "empty.txt", "")

		_, err := tsv.ReadTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty table")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := tsv.ReadTable(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
	})
}

func TestTableColumn(t *testing.T) {
	table := &tsv.Table{Header: []string{"Chr", "Start", "End"}}
	assert.Equal(t, 0, table.Column("Chr"))
	assert.Equal(t, 2, table.Column("End"))
	assert.Equal(t, -1, table.Column("Species"))
}

func TestWriteFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := tsv.WriteFile(path, []string{"Chr", "Color"}, [][]string{
			{"1", "0d0887"},
			{"2", "f0f921"},
		})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Chr\tColor\n1\t0d0887\n2\tf0f921\n", string(content))
	})

	t.Run("header only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, tsv.WriteFile(path, []string{"chr1", "pos1"}, nil))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "chr1\tpos1\n", string(content))
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale data that is longer than the new content\n"), 0o644))

		require.NoError(t, tsv.WriteFile(path, []string{"A"}, [][]string{{"1"}}))
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "A\n1\n", string(content))
	})
}
