// cmd/tpcschema/main.go dumps a suite's table list or one table's schema,
// for embedders wiring up a downstream loader without linking the whole
// generation engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/suite"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func main() {
	var (
		benchmark string
		table     string
	)

	rootCmd := &cobra.Command{
		Use:   "tpcschema",
		Short: "Print a benchmark suite's table list or a table's column schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(benchmark, table)
		},
	}

	rootCmd.Flags().StringVar(&benchmark, "benchmark", "", "Benchmark suite: tpch, tpcds, or ssb")
	rootCmd.Flags().StringVar(&table, "table", "", "Table name; omit to list every table in the suite")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(benchmark, table string) error {
	suiteID, err := genopts.NormalizeSuiteID(benchmark)
	if err != nil {
		return err
	}
	s, err := suite.MakeBenchmarkSuite(suiteID)
	if err != nil {
		return err
	}

	if table == "" {
		for i := 0; i < s.TableCount(); i++ {
			name, err := s.TableName(i)
			if err != nil {
				return err
			}
			fmt.Println(name)
		}
		return nil
	}

	gen, err := s.MakeIterator(table, genopts.Default())
	if err != nil {
		return err
	}
	schema := gen.Schema()
	for _, f := range schema.Fields {
		fmt.Printf("%-24s %-8s", f.Name, fieldTypeName(f.Type))
		if f.Type == batch.Decimal {
			fmt.Printf(" (%d,%d)", f.Precision, f.Scale)
		}
		fmt.Println()
	}
	return nil
}

func fieldTypeName(t batch.FieldType) string {
	switch t {
	case batch.Int32:
		return "int32"
	case batch.Int64:
		return "int64"
	case batch.Utf8:
		return "utf8"
	case batch.Bool:
		return "bool"
	case batch.Float32:
		return "float32"
	case batch.Decimal:
		return "decimal"
	case batch.Date32:
		return "date32"
	default:
		return "unknown"
	}
}
