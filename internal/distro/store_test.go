package distro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/internal/rng"
)

const sampleDSS = `
-- a comment line
BEGIN colors
red:10
green:20
blue\:navy:30
END colors

BEGIN states
CA:1:California:-8.0
NY:1:New York:-5.0
END states
`

func TestParseBuildsDistributionsWithCumulativeWeights(t *testing.T) {
	store, err := parse(strings.NewReader(sampleDSS))
	require.NoError(t, err)

	colors, err := store.Find("colors")
	require.NoError(t, err)
	require.Equal(t, 3, colors.Len())
	require.EqualValues(t, 60, colors.MaxWeight)
	require.Equal(t, int64(10), colors.Entries[0].Cumulative)
	require.Equal(t, int64(30), colors.Entries[1].Cumulative)
	require.Equal(t, int64(60), colors.Entries[2].Cumulative)
	require.Equal(t, "blue:navy", colors.Entries[2].Text)
}

func TestParseCapturesAuxiliaryColumns(t *testing.T) {
	store, err := parse(strings.NewReader(sampleDSS))
	require.NoError(t, err)

	states, err := store.Find("states")
	require.NoError(t, err)
	require.Equal(t, "California", states.Entries[0].AuxString)
	require.Equal(t, -8.0, states.Entries[0].AuxFloat)
}

func TestFindReturnsErrorForUnknownDistribution(t *testing.T) {
	store, err := parse(strings.NewReader(sampleDSS))
	require.NoError(t, err)
	_, err = store.Find("missing")
	require.Error(t, err)
}

func TestPickStaysWithinCumulativeWeightBounds(t *testing.T) {
	store, err := parse(strings.NewReader(sampleDSS))
	require.NoError(t, err)
	colors, err := store.Find("colors")
	require.NoError(t, err)

	s := rng.NewStream(1, 1, 1)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[colors.Pick(s).Text] = true
	}
	require.Subset(t, []string{"red", "green", "blue:navy"}, keys(seen))
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSplitEscapedHonorsBackslashEscape(t *testing.T) {
	fields := splitEscaped(`a\:b:c`, ':')
	require.Equal(t, []string{"a:b", "c"}, fields)
}

func TestToUTF8ReencodesLatin1Bytes(t *testing.T) {
	latin1 := string([]byte{0xE9}) // 'é' in Latin-1, invalid UTF-8 alone
	out := toUTF8(latin1)
	require.True(t, isValidUTF8(out))
}
