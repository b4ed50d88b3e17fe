// Package config loads the CLI's YAML/config-file collaborator: it
// merges an optional config file with CLI flag overrides into a
// genopts.Options-shaped request, the way a thin CLI layer translates
// flags and files into a library call without owning any domain logic
// itself.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/stormdb-contrib/tpcgen/internal/logging"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

// FileConfig is the shape a config file (or viper-managed environment)
// unmarshals into. Every field mirrors one genopts.Options field or one
// CLI-only concern (suite/table selection, output, parallelism, logging).
type FileConfig struct {
	Suite           string `mapstructure:"suite"`
	Table           string `mapstructure:"table"`
	ScaleFactor     float64 `mapstructure:"scale_factor"`
	StartRow        int64   `mapstructure:"start_row"`
	RowCount        int64   `mapstructure:"row_count"`
	ChunkSize       int64   `mapstructure:"chunk_size"`
	Columns         []string `mapstructure:"columns"`
	SeedMode        string  `mapstructure:"seed_mode"`
	DistributionDir string  `mapstructure:"distribution_dir"`

	Output   string `mapstructure:"output"`
	Parallel int    `mapstructure:"parallel"`

	Logging logging.Config `mapstructure:"logging"`
}

// Default returns a FileConfig matching genopts.Default() plus the CLI's
// own conventional defaults (single worker, write to stdout).
func Default() FileConfig {
	d := genopts.Default()
	return FileConfig{
		ScaleFactor: d.ScaleFactor,
		StartRow:    d.StartRow,
		RowCount:    d.RowCount,
		ChunkSize:   d.ChunkSize,
		SeedMode:    string(d.SeedMode),
		Output:      "-",
		Parallel:    1,
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
	}
}

// Load reads configFile (if non-empty) via viper and merges it onto
// Default(); an empty configFile returns defaults unchanged. It never
// validates cross-field invariants — that is genopts.Options.Validate's
// job, run once flags have been layered on top by the caller.
func Load(configFile string) (FileConfig, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ToOptions builds a genopts.Options from the config, without running
// Validate — the caller decides when to validate (typically after
// layering CLI flag overrides on top).
func (c FileConfig) ToOptions() genopts.Options {
	return genopts.Options{
		ScaleFactor:     c.ScaleFactor,
		StartRow:        c.StartRow,
		RowCount:        c.RowCount,
		ChunkSize:       c.ChunkSize,
		ColumnNames:     c.Columns,
		SeedMode:        genopts.SeedMode(c.SeedMode),
		DistributionDir: c.DistributionDir,
	}
}

// ParallelWorkers clamps the configured worker count to at least 1.
func (c FileConfig) ParallelWorkers() int {
	if c.Parallel < 1 {
		return 1
	}
	return c.Parallel
}
