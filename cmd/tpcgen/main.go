// cmd/tpcgen/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/config"
	"github.com/stormdb-contrib/tpcgen/internal/logging"
	"github.com/stormdb-contrib/tpcgen/internal/parallel"
	"github.com/stormdb-contrib/tpcgen/internal/progress"
	"github.com/stormdb-contrib/tpcgen/internal/suite"
	"github.com/stormdb-contrib/tpcgen/internal/textformat"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

// Version information (set by the build system via ldflags).
var (
	Version   = "v0.1.0"
	GitCommit = "unknown"
)

func main() {
	var (
		configFile  string
		benchmark   string
		table       string
		scale       float64
		chunkSize   int64
		startRow    int64
		rowCount    int64
		output      string
		parallelN   int
		seedMode    string
		logLevel    string
		logFormat   string
		showVersion bool
	)

	rootCmd := &cobra.Command{
		Use:   "tpcgen",
		Short: "Deterministic TPC-H / TPC-DS / SSB benchmark data generator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Printf("tpcgen %s (%s)\n", Version, GitCommit)
				return nil
			}

			fileCfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &fileCfg, benchmark, table, scale, chunkSize, startRow, rowCount, output, parallelN, seedMode, logLevel, logFormat)

			return run(fileCfg)
		},
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.Flags().StringVar(&benchmark, "benchmark", "", "Benchmark suite: tpch, tpcds, or ssb")
	rootCmd.Flags().StringVar(&table, "table", "", "Table name within the suite")
	rootCmd.Flags().Float64Var(&scale, "scale", 0, "Scale factor")
	rootCmd.Flags().Int64Var(&chunkSize, "chunk-size", 0, "Rows per emitted batch")
	rootCmd.Flags().Int64Var(&startRow, "start-row", 0, "0-based starting row")
	rootCmd.Flags().Int64Var(&rowCount, "row-count", 0, "Rows to generate, -1 for all")
	rootCmd.Flags().StringVar(&output, "output", "", "Output file stem, or - for stdout")
	rootCmd.Flags().IntVar(&parallelN, "parallel", 0, "Number of parallel workers")
	rootCmd.Flags().StringVar(&seedMode, "dbgen-seed-mode", "", "per_table or all_tables")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: console or json")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Show version information and exit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlagOverrides layers only the flags the user actually set onto
// fileCfg, giving the CLI higher priority than the config file without
// letting a flag's zero value clobber a configured one.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.FileConfig, benchmark, table string, scale float64, chunkSize, startRow, rowCount int64, output string, parallelN int, seedMode, logLevel, logFormat string) {
	flags := cmd.Flags()
	if flags.Changed("benchmark") {
		cfg.Suite = benchmark
	}
	if flags.Changed("table") {
		cfg.Table = table
	}
	if flags.Changed("scale") {
		cfg.ScaleFactor = scale
	}
	if flags.Changed("chunk-size") {
		cfg.ChunkSize = chunkSize
	}
	if flags.Changed("start-row") {
		cfg.StartRow = startRow
	}
	if flags.Changed("row-count") {
		cfg.RowCount = rowCount
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallelN
	}
	if flags.Changed("dbgen-seed-mode") {
		cfg.SeedMode = seedMode
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
}

func run(cfg config.FileConfig) error {
	baseLogger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = baseLogger.Sync() }()

	runID := uuid.New().String()
	logger := baseLogger.With(zap.String("run_id", runID))

	suiteID, err := genopts.NormalizeSuiteID(cfg.Suite)
	if err != nil {
		return err
	}
	if cfg.Table == "" {
		return fmt.Errorf("--table is required")
	}

	opts := cfg.ToOptions()
	if err := opts.Validate(); err != nil {
		return err
	}

	s, err := suite.MakeBenchmarkSuite(suiteID)
	if err != nil {
		return err
	}
	if _, err := s.Find(cfg.Table); err != nil {
		return err
	}

	workers := cfg.ParallelWorkers()
	totalRows, totalKnown, err := s.ResolveTableRowCount(cfg.Table, opts)
	if err != nil {
		return err
	}
	ranges := parallel.PlanRangesForOptions(workers, opts, totalRows, totalKnown)

	logger.Info("starting generation",
		append(logging.Fields.Suite(string(suiteID), cfg.Table),
			zap.Float64("scale_factor", opts.ScaleFactor),
			zap.Int("workers", len(ranges)))...)

	jobs := parallel.JobsForRanges(ranges, func(ctx context.Context, workerID int, r parallel.Range) error {
		workerOpts := r.Apply(opts)
		gen, err := s.MakeIterator(cfg.Table, workerOpts)
		if err != nil {
			return err
		}
		asm, err := batch.NewAssembler(gen, workerOpts.StartRow, workerOpts.RowCount, workerOpts.ChunkSize, workerOpts.ColumnNames)
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput(cfg.Output, workerID, len(ranges))
		if err != nil {
			return err
		}
		defer closeOut()

		var tracker *progress.Tracker
		if cfg.Output != "" && cfg.Output != "-" && r.RowCount > 0 {
			tracker = progress.NewTracker(fmt.Sprintf("%s[%d]", cfg.Table, workerID), int(r.RowCount))
		}

		for {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b, err := asm.NextBatch()
			if err != nil {
				return err
			}
			if b == nil {
				if tracker != nil {
					tracker.Finish()
				}
				return nil
			}
			if err := textformat.WriteBatch(out, b); err != nil {
				return err
			}
			if tracker != nil {
				tracker.Add(b.Rows)
			}
		}
	})

	if err := parallel.Run(context.Background(), jobs, workers, logger); err != nil {
		logger.Error("generation failed", err)
		return err
	}

	logger.Info("generation complete", logging.Fields.Suite(string(suiteID), cfg.Table)...)
	return nil
}

// openOutput resolves one worker's destination: "-" (or unset) always
// means stdout regardless of worker count, since splitting stdout across
// workers makes no sense; a real path gets "-<index>" appended whenever
// more than one worker is running.
func openOutput(stem string, workerID, totalWorkers int) (out *os.File, closeFn func(), err error) {
	if stem == "" || stem == "-" {
		return os.Stdout, func() {}, nil
	}
	path := stem
	if totalWorkers > 1 {
		path = stem + "-" + strconv.Itoa(workerID)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
