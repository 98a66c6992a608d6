package split

import "github.com/mhbutzke/half-trip/internal/currency"

// =============================================================================
// BY-PERCENTAGE SPLIT STRATEGY
// Divides the expense based on the percentage entered for each participant
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage splits
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypeByPercentage
}

// Calculate assigns each participant their entered percentage of the total
func (s *PercentageStrategy) Calculate(total float64, in Input) []Allocation {
	return CalculatePercentageSplits(total, in.Percentages, in.ParticipantIDs)
}

// CalculatePercentageSplits parses each participant's entered percentage and
// computes their amount as that share of the total, rounded to the cent. It
// does not enforce that the percentages add up to 100;
// ValidatePercentagesTotal does that.
func CalculatePercentageSplits(total float64, customPercentages map[string]string, participantIDs []string) []Allocation {
	allocations := make([]Allocation, len(participantIDs))
	for i, id := range participantIDs {
		entered, ok := customPercentages[id]
		if !ok {
			entered = "0"
		}
		percentage := currency.ParseAmount(entered)

		allocations[i] = Allocation{
			ParticipantID: id,
			Amount:        roundToTwoDecimals(total * percentage / 100),
			Percentage:    percentage,
		}
	}

	return allocations
}
