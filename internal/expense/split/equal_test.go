package split

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEqualSplits_ThreeWays(t *testing.T) {
	allocations := CalculateEqualSplits(100, []string{"a", "b", "c"})

	require.Len(t, allocations, 3)

	// First participant absorbs the rounding cent.
	assert.Equal(t, "a", allocations[0].ParticipantID)
	assert.InDelta(t, 33.34, allocations[0].Amount, 1e-9)
	assert.InDelta(t, 33.33, allocations[1].Amount, 1e-9)
	assert.InDelta(t, 33.33, allocations[2].Amount, 1e-9)

	for _, a := range allocations {
		assert.InDelta(t, 33.33, a.Percentage, 1e-9)
	}

	var sum float64
	for _, a := range allocations {
		sum += a.Amount
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestCalculateEqualSplits_SumInvariant(t *testing.T) {
	totals := []float64{0, 0.01, 0.1, 1, 10, 99.99, 100, 123.45, 1000.01, 33333.33}

	for _, total := range totals {
		for n := 1; n <= 9; n++ {
			t.Run(fmt.Sprintf("total=%v/n=%d", total, n), func(t *testing.T) {
				ids := make([]string, n)
				for i := range ids {
					ids[i] = fmt.Sprintf("p%d", i)
				}

				allocations := CalculateEqualSplits(total, ids)
				require.Len(t, allocations, n)

				var sum float64
				for _, a := range allocations {
					sum += a.Amount
				}
				assert.InDelta(t, total, sum, 0.01)

				// Everyone past the first gets exactly the truncated base.
				for i := 2; i < n; i++ {
					assert.Equal(t, allocations[1].Amount, allocations[i].Amount)
				}
				assert.GreaterOrEqual(t, allocations[0].Amount, allocations[len(allocations)-1].Amount)
			})
		}
	}
}

func TestCalculateEqualSplits_PreservesOrder(t *testing.T) {
	ids := []string{"zoe", "adam", "mia"}
	allocations := CalculateEqualSplits(30, ids)

	require.Len(t, allocations, 3)
	for i, id := range ids {
		assert.Equal(t, id, allocations[i].ParticipantID)
	}
}

func TestCalculateEqualSplits_NoParticipants(t *testing.T) {
	assert.Empty(t, CalculateEqualSplits(100, nil))
}

func TestCalculateEqualSplits_SingleParticipant(t *testing.T) {
	allocations := CalculateEqualSplits(55.55, []string{"solo"})

	require.Len(t, allocations, 1)
	assert.InDelta(t, 55.55, allocations[0].Amount, 1e-9)
	assert.InDelta(t, 100, allocations[0].Percentage, 1e-9)
}
