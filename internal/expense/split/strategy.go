package split

import (
	"errors"
	"fmt"
	"math"
)

// SplitType defines the strategy used to divide an expense
type SplitType string

const (
	SplitTypeEqual        SplitType = "equal"
	SplitTypeByAmount     SplitType = "by_amount"
	SplitTypeByPercentage SplitType = "by_percentage"
)

// Allocation is one participant's computed share of an expense, expressed
// as both an amount and a percentage of the total
type Allocation struct {
	ParticipantID string  `json:"participant_id"`
	Amount        float64 `json:"amount"`
	Percentage    float64 `json:"percentage"`
}

// Input carries the strategy-specific values entered on the expense form.
// Amounts and Percentages hold the strings exactly as the user typed them,
// keyed by participant id; a missing entry counts as "0".
type Input struct {
	ParticipantIDs []string
	Amounts        map[string]string
	Percentages    map[string]string
}

// Strategy is the interface all split strategies implement. Calculate is
// total for its input domain: an empty participant list produces an empty
// result, never an error. Whether the result reconciles to the total is the
// validators' concern, not the strategies'.
type Strategy interface {
	// Calculate computes one allocation per participant, in input order
	Calculate(total float64, in Input) []Allocation

	// Type returns the identifier for this strategy
	Type() SplitType
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewStrategyFactory creates a new factory instance
func NewStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{}, nil
	case SplitTypeByAmount:
		return &AmountStrategy{}, nil
	case SplitTypeByPercentage:
		return &PercentageStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

var (
	ErrAmountNotPositive       = errors.New("amount must be greater than zero")
	ErrExchangeRateNotPositive = errors.New("exchange rate must be greater than zero")
)

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
