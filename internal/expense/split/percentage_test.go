package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePercentageSplits(t *testing.T) {
	allocations := CalculatePercentageSplits(200, map[string]string{"a": "60", "b": "40"}, []string{"a", "b"})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 120, allocations[0].Amount, 1e-9)
	assert.InDelta(t, 60, allocations[0].Percentage, 1e-9)
	assert.InDelta(t, 80, allocations[1].Amount, 1e-9)
	assert.InDelta(t, 40, allocations[1].Percentage, 1e-9)
}

func TestCalculatePercentageSplits_RoundsToCents(t *testing.T) {
	allocations := CalculatePercentageSplits(100, map[string]string{"a": "33,33", "b": "66.67"}, []string{"a", "b"})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 33.33, allocations[0].Amount, 1e-9)
	assert.InDelta(t, 66.67, allocations[1].Amount, 1e-9)
}

func TestCalculatePercentageSplits_MissingEntriesDefaultToZero(t *testing.T) {
	allocations := CalculatePercentageSplits(100, map[string]string{"a": "100"}, []string{"a", "b"})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 100, allocations[0].Amount, 1e-9)
	assert.Zero(t, allocations[1].Amount)
	assert.Zero(t, allocations[1].Percentage)
}

func TestCalculatePercentageSplits_DoesNotEnforceHundred(t *testing.T) {
	percentages := map[string]string{"a": "50", "b": "30"}
	allocations := CalculatePercentageSplits(100, percentages, []string{"a", "b"})

	require.Len(t, allocations, 2)

	v := ValidatePercentagesTotal(percentages, []string{"a", "b"}, DefaultTolerance)
	assert.False(t, v.Valid)
	assert.InDelta(t, 20, v.Difference, 1e-9)
}
