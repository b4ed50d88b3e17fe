package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/internal/rng"
)

func TestDecimalArithmeticRescales(t *testing.T) {
	a := NewDecimal(10050, 2, 7) // 100.50
	b := NewDecimal(500, 3, 7)   // 0.500

	require.Equal(t, "101.000", a.Add(b).String())
	require.Equal(t, "100.000", a.Sub(b).String())
	require.Equal(t, "50.250", a.Mul(b).String())
}

func TestDecimalStringRendersNegativeAndZeroScale(t *testing.T) {
	require.Equal(t, "-1.23", NewDecimal(-123, 2, 5).String())
	require.Equal(t, "42", NewDecimal(42, 0, 5).String())
	require.Equal(t, "0.05", NewDecimal(5, 2, 5).String())
}

func TestDecimalFromFloatRoundsToScale(t *testing.T) {
	d := DecimalFromFloat(19.995, 2, 7)
	require.Equal(t, int64(2000), d.Number)
}

func TestDateIDRoundTripsThroughCalendar(t *testing.T) {
	d := NewDateID(1998, 3, 14)
	require.Equal(t, 1998, d.Year())
	require.Equal(t, 3, d.Month())
	require.Equal(t, 14, d.Day())
}

func TestLastDayOfMonthQuirkHandlesLeapFebruary(t *testing.T) {
	d := LastDayOfMonthQuirk(2000, 2)
	require.Equal(t, 2000, d.Year())
	require.Equal(t, 3, d.Month())
	require.Equal(t, 2, d.Day())
}

func TestWeekdayMemoMatchesDirectComputation(t *testing.T) {
	var memo WeekdayMemo
	start := NewDateID(2024, 1, 1)
	for i := 0; i < 10; i++ {
		d := DateID(int(start) + i)
		require.Equal(t, d.ToTime().Weekday(), memo.Weekday(d))
	}
}

func TestBusinessKeyIsStableAndUsesDeclaredAlphabet(t *testing.T) {
	k1 := BusinessKey(1)
	k2 := BusinessKey(1)
	require.Equal(t, k1, k2)
	require.Len(t, k1, 16)
	for _, c := range k1 {
		require.Contains(t, businessKeyAlphabet, string(c))
	}
	require.NotEqual(t, BusinessKey(1), BusinessKey(2))
}

func TestPermutationIsBijectiveOverRange(t *testing.T) {
	s := rng.NewStream(1, 1, 1)
	p := NewPermutation(s, 20)
	seen := make(map[int]bool)
	for i := 0; i < p.Len(); i++ {
		seen[p.At(i)] = true
	}
	require.Len(t, seen, 20)
}

func TestPermutationAtWrapsModulo(t *testing.T) {
	s := rng.NewStream(1, 1, 1)
	p := NewPermutation(s, 5)
	require.Equal(t, p.At(0), p.At(5))
	require.Equal(t, p.At(2), p.At(7))
}

func TestSetSCDKeysFirstRowOpensGroup(t *testing.T) {
	offsets := SCDDateOffsets{
		MinDateID:   NewDateID(1998, 1, 1),
		ThirdDateID: NewDateID(1999, 1, 1),
		HalfDateID:  NewDateID(2000, 1, 1),
	}
	key, start, end, isNew := SetSCDKeys(1, 1, offsets, 0)
	require.True(t, isNew)
	require.Equal(t, offsets.MinDateID, start)
	require.Equal(t, offsets.ThirdDateID-1, end)
	require.Equal(t, BusinessKey(1), key)
}

func TestSetSCDKeysLastRowInGroupIsAlwaysOpen(t *testing.T) {
	offsets := SCDDateOffsets{
		MinDateID:   NewDateID(1998, 1, 1),
		ThirdDateID: NewDateID(1999, 1, 1),
		HalfDateID:  NewDateID(2000, 1, 1),
	}
	_, _, end, isNew := SetSCDKeys(1, SCDGroupSize, offsets, 0)
	require.False(t, isNew)
	require.EqualValues(t, -1, end)
}

func TestGroupStartRowFloorsToGroupBoundary(t *testing.T) {
	require.EqualValues(t, 1, GroupStartRow(1))
	require.EqualValues(t, 1, GroupStartRow(SCDGroupSize))
	require.EqualValues(t, SCDGroupSize+1, GroupStartRow(SCDGroupSize+1))
}

func TestChangeSCDValueCommitsOnFirstRecord(t *testing.T) {
	s := rng.NewStream(1, 1, 1)
	flags := NewChangeFlags(s)
	newValue := "updated"
	oldValue := "original"
	flags.ChangeSCDValue(&newValue, &oldValue, true)
	require.Equal(t, "updated", oldValue)
}

func TestComputeSalesPricingProducesConsistentTotals(t *testing.T) {
	s := rng.NewStream(1, 1, 7)
	p := ComputeSalesPricing(SSPricing, s)
	require.Equal(t, p.NetPaid.Add(p.ExtTax).String(), p.NetPaidIncTax.String())
	require.Equal(t, p.NetPaid.Add(p.ExtShipCost).String(), p.NetPaidIncShip.String())
}

func TestComputeReturnsPricingNeverReturnsMoreThanSold(t *testing.T) {
	s := rng.NewStream(1, 1, 20)
	sold := ComputeSalesPricing(SSPricing, s)
	ret := ComputeReturnsPricing(SRPricing, s, sold)
	require.LessOrEqual(t, ret.Quantity, sold.Quantity)
}
