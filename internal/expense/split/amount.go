package split

import "github.com/mhbutzke/half-trip/internal/currency"

// =============================================================================
// BY-AMOUNT SPLIT STRATEGY
// Each participant is assigned the exact amount entered for them
// =============================================================================

// AmountStrategy implements the Strategy interface for fixed-amount splits
type AmountStrategy struct{}

// Type returns the split type identifier
func (s *AmountStrategy) Type() SplitType {
	return SplitTypeByAmount
}

// Calculate assigns each participant the amount entered for them
func (s *AmountStrategy) Calculate(total float64, in Input) []Allocation {
	return CalculateAmountSplits(total, in.Amounts, in.ParticipantIDs)
}

// CalculateAmountSplits parses each participant's entered amount and derives
// the equivalent percentage of the total. It does not enforce that the
// amounts add up to the total; ValidateSplitsTotal does that.
func CalculateAmountSplits(total float64, customAmounts map[string]string, participantIDs []string) []Allocation {
	allocations := make([]Allocation, len(participantIDs))
	for i, id := range participantIDs {
		entered, ok := customAmounts[id]
		if !ok {
			entered = "0"
		}
		amount := currency.ParseAmount(entered)

		percentage := 0.0
		if total > 0 {
			percentage = roundToTwoDecimals(amount / total * 100)
		}

		allocations[i] = Allocation{
			ParticipantID: id,
			Amount:        amount,
			Percentage:    percentage,
		}
	}

	return allocations
}
