package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAmountSplits(t *testing.T) {
	allocations := CalculateAmountSplits(100, map[string]string{"a": "60", "b": "40"}, []string{"a", "b"})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 60, allocations[0].Amount, 1e-9)
	assert.InDelta(t, 60, allocations[0].Percentage, 1e-9)
	assert.InDelta(t, 40, allocations[1].Amount, 1e-9)
	assert.InDelta(t, 40, allocations[1].Percentage, 1e-9)

	v := ValidateSplitsTotal(allocations, 100, DefaultTolerance)
	assert.True(t, v.Valid)
	assert.Zero(t, v.Difference)
}

func TestCalculateAmountSplits_CommaDecimals(t *testing.T) {
	allocations := CalculateAmountSplits(50, map[string]string{"a": "30,50", "b": "19.50"}, []string{"a", "b"})

	require.Len(t, allocations, 2)
	assert.InDelta(t, 30.50, allocations[0].Amount, 1e-9)
	assert.InDelta(t, 61, allocations[0].Percentage, 1e-9)
	assert.InDelta(t, 19.50, allocations[1].Amount, 1e-9)
	assert.InDelta(t, 39, allocations[1].Percentage, 1e-9)
}

func TestCalculateAmountSplits_MissingAndMalformedEntries(t *testing.T) {
	allocations := CalculateAmountSplits(100, map[string]string{"a": "abc"}, []string{"a", "b"})

	require.Len(t, allocations, 2)
	// Garbage parses to zero; missing entries default to "0".
	assert.Zero(t, allocations[0].Amount)
	assert.Zero(t, allocations[1].Amount)
}

func TestCalculateAmountSplits_ZeroTotal(t *testing.T) {
	allocations := CalculateAmountSplits(0, map[string]string{"a": "10"}, []string{"a"})

	require.Len(t, allocations, 1)
	assert.InDelta(t, 10, allocations[0].Amount, 1e-9)
	assert.Zero(t, allocations[0].Percentage)
}

func TestCalculateAmountSplits_DoesNotEnforceTotal(t *testing.T) {
	allocations := CalculateAmountSplits(100, map[string]string{"a": "10", "b": "20"}, []string{"a", "b"})

	require.Len(t, allocations, 2)

	v := ValidateSplitsTotal(allocations, 100, DefaultTolerance)
	assert.False(t, v.Valid)
	assert.InDelta(t, 70, v.Difference, 1e-9)
}
