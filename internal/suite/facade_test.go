package suite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/internal/errs"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func TestMakeBenchmarkSuiteResolvesAllThree(t *testing.T) {
	for _, id := range []genopts.SuiteID{genopts.TPCH, genopts.SSB, genopts.TPCDS} {
		s, err := MakeBenchmarkSuite(id)
		require.NoError(t, err)
		require.Greater(t, s.TableCount(), 0)
	}
}

func TestTPCHFacadeMakesIterator(t *testing.T) {
	s, err := MakeBenchmarkSuite(genopts.TPCH)
	require.NoError(t, err)

	opts := genopts.Default()
	opts.ScaleFactor = 1
	gen, err := s.MakeIterator("nation", opts)
	require.NoError(t, err)

	row, err := gen.GenerateRow(1)
	require.NoError(t, err)
	require.NotNil(t, row.Values)
}

func TestResolveTableRowCountUnknownForLineitem(t *testing.T) {
	s, err := MakeBenchmarkSuite(genopts.TPCH)
	require.NoError(t, err)

	opts := genopts.Default()
	opts.ScaleFactor = 1
	_, ok, err := s.ResolveTableRowCount("lineitem", opts)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFindRejectsUnknownTable(t *testing.T) {
	s, err := MakeBenchmarkSuite(genopts.TPCH)
	require.NoError(t, err)
	_, err = s.Find("not_a_table")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestFindReportsNotImplementedForRealButUnwiredTable(t *testing.T) {
	s, err := MakeBenchmarkSuite(genopts.TPCDS)
	require.NoError(t, err)

	_, err = s.Find("promotion")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.NotImplemented))

	_, err = s.Find("not_a_real_table")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}
