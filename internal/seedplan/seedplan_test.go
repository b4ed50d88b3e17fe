package seedplan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func testSpecs() []ColumnSpec {
	return []ColumnSpec{
		{Name: "a", ColumnID: 0, SeedsPerRow: 1},
		{Name: "b", ColumnID: 1, SeedsPerRow: 2},
	}
}

func TestNewStreamSetBuildsOneStreamPerSpec(t *testing.T) {
	ss := NewStreamSet(TPCHSeedBase, testSpecs())
	require.Equal(t, 1, ss.Stream("a").SeedsPerRow())
	require.Equal(t, 2, ss.Stream("b").SeedsPerRow())
}

func TestStreamPanicsOnUnknownName(t *testing.T) {
	ss := NewStreamSet(TPCHSeedBase, testSpecs())
	require.Panics(t, func() { ss.Stream("missing") })
}

func TestResetReturnsStreamsToInitialSeed(t *testing.T) {
	ss := NewStreamSet(TPCHSeedBase, testSpecs())
	first := ss.Stream("a").NextRandom()
	ss.Stream("a").NextRandom()
	ss.Reset()
	require.Equal(t, first, ss.Stream("a").NextRandom())
}

func TestConsumeRemainingPadsUndrawnSeeds(t *testing.T) {
	ss := NewStreamSet(TPCHSeedBase, testSpecs())
	// "b" declares 2 seeds per row; draw none before consuming.
	require.NoError(t, ss.ConsumeRemaining())
	require.Zero(t, ss.Stream("b").SeedsUsed())
}

func TestApplySeedModeIsNoOpUnderPerTable(t *testing.T) {
	ss := NewStreamSet(TPCHSeedBase, testSpecs())
	before := ss.Stream("a").NextRandom()
	ss.Reset()
	ApplySeedMode(ss, genopts.PerTable, 1.0, []RelationshipAdvance{
		{OwnerStream: "a", PrecedingTable: "x", RowCountAtScale: func(float64) int64 { return 100 }},
	})
	require.Equal(t, before, ss.Stream("a").NextRandom())
}

func TestApplySeedModeAdvancesOwnerStreamUnderAllTables(t *testing.T) {
	ssSkipped := NewStreamSet(TPCHSeedBase, testSpecs())
	ApplySeedMode(ssSkipped, genopts.AllTables, 1.0, []RelationshipAdvance{
		{OwnerStream: "a", PrecedingTable: "x", RowCountAtScale: func(float64) int64 { return 3 }},
	})

	ssManual := NewStreamSet(TPCHSeedBase, testSpecs())
	ssManual.SkipStream("a", 3)

	require.Equal(t, ssManual.Stream("a").NextRandom(), ssSkipped.Stream("a").NextRandom())
}
