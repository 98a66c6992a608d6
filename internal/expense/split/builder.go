package split

import (
	"fmt"

	"github.com/mhbutzke/half-trip/internal/currency"
)

// BuildInput carries the raw form values for one expense save: the amount
// and exchange rate exactly as typed, the chosen strategy, and the ordered
// participant list with any per-participant custom entries.
type BuildInput struct {
	Amount            string
	Currency          currency.Code
	ExchangeRate      string
	SplitType         SplitType
	ParticipantIDs    []string
	CustomAmounts     map[string]string
	CustomPercentages map[string]string
}

// BuildResult is the validated outcome of a split computation
type BuildResult struct {
	Splits       []Allocation
	Amount       float64
	ExchangeRate float64
}

// Builder turns form input into validated splits. It performs no I/O and
// keeps no state between calls; every rejection comes back as an error value
// carrying the message shown to the user.
type Builder struct {
	factory *Factory
}

// NewBuilder creates a builder with the strategy factory wired in
func NewBuilder() *Builder {
	return &Builder{factory: NewStrategyFactory()}
}

// Build parses the entered amount and exchange rate, dispatches to the
// strategy for the requested split type, and validates the result.
//
// The exchange rate defaults to 1 when the field is blank and is only
// checked when the expense currency differs from the trip's base currency;
// for same-currency expenses a zero or garbage rate is irrelevant and passes
// through untouched.
func (b *Builder) Build(in BuildInput, baseCurrency currency.Code) (*BuildResult, error) {
	amount := currency.ParseAmount(in.Amount)
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}

	exchangeRate := 1.0
	if in.ExchangeRate != "" {
		exchangeRate = currency.ParseAmount(in.ExchangeRate)
	}
	if in.Currency != baseCurrency && exchangeRate <= 0 {
		return nil, ErrExchangeRateNotPositive
	}

	strategy, err := b.factory.Create(in.SplitType)
	if err != nil {
		return nil, err
	}

	splits := strategy.Calculate(amount, Input{
		ParticipantIDs: in.ParticipantIDs,
		Amounts:        in.CustomAmounts,
		Percentages:    in.CustomPercentages,
	})

	// The equal strategy is total-exact by construction and needs no check.
	switch in.SplitType {
	case SplitTypeByAmount:
		v := ValidateSplitsTotal(splits, amount, DefaultTolerance)
		if !v.Valid {
			return nil, fmt.Errorf("split amounts do not add up to the total: off by %s %s",
				currency.FormatValue(v.Difference, in.Currency), in.Currency)
		}
	case SplitTypeByPercentage:
		v := ValidatePercentagesTotal(in.CustomPercentages, in.ParticipantIDs, DefaultTolerance)
		if !v.Valid {
			return nil, fmt.Errorf("split percentages do not add up to 100%%: off by %.2f%%", v.Difference)
		}
	}

	return &BuildResult{
		Splits:       splits,
		Amount:       amount,
		ExchangeRate: exchangeRate,
	}, nil
}
