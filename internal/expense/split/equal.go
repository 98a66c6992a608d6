package split

import "math"

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense equally among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Calculate divides the total equally among the participants
func (s *EqualStrategy) Calculate(total float64, in Input) []Allocation {
	return CalculateEqualSplits(total, in.ParticipantIDs)
}

// CalculateEqualSplits gives every participant the per-head share truncated
// to the cent, with the leftover cents going to the first participant in
// input order. Truncation plus remainder-to-first guarantees the amounts sum
// back to the total exactly; who absorbs the extra cent is a deliberate,
// order-dependent tie-break, so callers must keep participant order stable.
func CalculateEqualSplits(total float64, participantIDs []string) []Allocation {
	n := len(participantIDs)
	if n == 0 {
		return []Allocation{}
	}

	base := math.Floor(total/float64(n)*100) / 100
	remainder := roundToTwoDecimals(total - base*float64(n))
	percentage := roundToTwoDecimals(100 / float64(n))

	allocations := make([]Allocation, n)
	for i, id := range participantIDs {
		amount := base
		if i == 0 {
			amount = roundToTwoDecimals(base + remainder)
		}
		allocations[i] = Allocation{
			ParticipantID: id,
			Amount:        amount,
			Percentage:    percentage,
		}
	}

	return allocations
}
