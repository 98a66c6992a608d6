package split

import (
	"math"

	"github.com/mhbutzke/half-trip/internal/currency"
)

// DefaultTolerance is the maximum discrepancy, in currency units or
// percentage points, before a split is considered invalid
const DefaultTolerance = 0.01

// Validation reports whether a split reconciles and by how much it misses.
// Difference is signed as expected minus actual, rounded to 2 decimals.
type Validation struct {
	Valid      bool    `json:"valid"`
	Difference float64 `json:"difference"`
}

// ValidateSplitsTotal checks that the allocated amounts add up to the
// expense total within the tolerance
func ValidateSplitsTotal(allocations []Allocation, total, tolerance float64) Validation {
	var sum float64
	for _, a := range allocations {
		sum += a.Amount
	}

	difference := roundToTwoDecimals(total - sum)
	return Validation{
		Valid:      math.Abs(difference) <= tolerance,
		Difference: difference,
	}
}

// ValidatePercentagesTotal checks that the entered percentages for exactly
// the given participants add up to 100 within the tolerance. Entries for any
// other participant id are ignored.
func ValidatePercentagesTotal(customPercentages map[string]string, participantIDs []string, tolerance float64) Validation {
	var sum float64
	for _, id := range participantIDs {
		entered, ok := customPercentages[id]
		if !ok {
			entered = "0"
		}
		sum += currency.ParseAmount(entered)
	}

	difference := roundToTwoDecimals(100 - sum)
	return Validation{
		Valid:      math.Abs(difference) <= tolerance,
		Difference: difference,
	}
}
