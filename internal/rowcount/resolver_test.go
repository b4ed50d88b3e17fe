package rowcount

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearScalesWithScaleFactorAndRoundsDown(t *testing.T) {
	f := Linear(1_000)
	require.EqualValues(t, 2_000, f(2.0))
	require.EqualValues(t, 500, f(0.5))
	require.EqualValues(t, 333, f(0.3333))
}

func TestFixedIgnoresScaleFactor(t *testing.T) {
	f := Fixed(25)
	require.EqualValues(t, 25, f(0.01))
	require.EqualValues(t, 25, f(100))
}

func TestResolveReportsUnknownForNilFormula(t *testing.T) {
	count, ok := Resolve(Unknown, 1.0)
	require.False(t, ok)
	require.Zero(t, count)
}

func TestResolveReportsKnownCountForFormula(t *testing.T) {
	count, ok := Resolve(Linear(100), 2.0)
	require.True(t, ok)
	require.EqualValues(t, 200, count)
}
