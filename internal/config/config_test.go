package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMergesConfigFileOntoDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "tpcgen.yaml")

	configContent := `
suite: tpch
table: lineitem
scale_factor: 10
row_count: 5000
parallel: 4
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0o600))

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.Equal(t, "tpch", cfg.Suite)
	require.Equal(t, "lineitem", cfg.Table)
	require.Equal(t, 10.0, cfg.ScaleFactor)
	require.EqualValues(t, 5000, cfg.RowCount)
	require.Equal(t, 4, cfg.ParallelWorkers())

	// chunk_size wasn't in the file, so it keeps its default.
	require.EqualValues(t, Default().ChunkSize, cfg.ChunkSize)
}

func TestLoadWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestToOptionsCarriesEveryGenopt(t *testing.T) {
	cfg := Default()
	cfg.ScaleFactor = 0.1
	cfg.Columns = []string{"c_custkey"}

	opts := cfg.ToOptions()
	require.Equal(t, 0.1, opts.ScaleFactor)
	require.Equal(t, []string{"c_custkey"}, opts.ColumnNames)
	require.NoError(t, opts.Validate())
}

func TestParallelWorkersClampsBelowOne(t *testing.T) {
	cfg := Default()
	cfg.Parallel = 0
	require.Equal(t, 1, cfg.ParallelWorkers())
}
