package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhbutzke/half-trip/internal/currency"
)

func TestBuilder_EqualSplit(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.BRL,
		SplitType:      SplitTypeEqual,
		ParticipantIDs: []string{"a", "b", "c"},
	}, currency.BRL)

	require.NoError(t, err)
	require.Len(t, result.Splits, 3)
	assert.InDelta(t, 100, result.Amount, 1e-9)
	assert.InDelta(t, 1, result.ExchangeRate, 1e-9)
	assert.InDelta(t, 33.34, result.Splits[0].Amount, 1e-9)
}

func TestBuilder_RejectsNonPositiveAmount(t *testing.T) {
	b := NewBuilder()

	for _, amount := range []string{"0", "", "-5", "abc", "0,00"} {
		for _, splitType := range []SplitType{SplitTypeEqual, SplitTypeByAmount, SplitTypeByPercentage} {
			result, err := b.Build(BuildInput{
				Amount:         amount,
				Currency:       currency.BRL,
				SplitType:      splitType,
				ParticipantIDs: []string{"a"},
			}, currency.BRL)

			assert.Nil(t, result, "amount %q type %s", amount, splitType)
			assert.ErrorIs(t, err, ErrAmountNotPositive, "amount %q type %s", amount, splitType)
		}
	}
}

func TestBuilder_RejectsZeroRateForForeignCurrency(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.USD,
		ExchangeRate:   "0",
		SplitType:      SplitTypeEqual,
		ParticipantIDs: []string{"a", "b"},
	}, currency.BRL)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrExchangeRateNotPositive)
}

func TestBuilder_ToleratesBadRateForBaseCurrency(t *testing.T) {
	b := NewBuilder()

	// Same currency as the trip base: the rate is irrelevant and whatever
	// was entered passes through unchecked.
	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.BRL,
		ExchangeRate:   "0",
		SplitType:      SplitTypeEqual,
		ParticipantIDs: []string{"a", "b"},
	}, currency.BRL)

	require.NoError(t, err)
	assert.Zero(t, result.ExchangeRate)
}

func TestBuilder_ForeignCurrencyRateApplied(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.USD,
		ExchangeRate:   "5,43",
		SplitType:      SplitTypeEqual,
		ParticipantIDs: []string{"a", "b"},
	}, currency.BRL)

	require.NoError(t, err)
	assert.InDelta(t, 5.43, result.ExchangeRate, 1e-9)
}

func TestBuilder_ByAmountValid(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.BRL,
		SplitType:      SplitTypeByAmount,
		ParticipantIDs: []string{"a", "b"},
		CustomAmounts:  map[string]string{"a": "60", "b": "40"},
	}, currency.BRL)

	require.NoError(t, err)
	require.Len(t, result.Splits, 2)
	assert.InDelta(t, 60, result.Splits[0].Amount, 1e-9)
	assert.InDelta(t, 40, result.Splits[1].Amount, 1e-9)
}

func TestBuilder_ByAmountMismatchRejected(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.BRL,
		SplitType:      SplitTypeByAmount,
		ParticipantIDs: []string{"a", "b"},
		CustomAmounts:  map[string]string{"a": "60", "b": "39,50"},
	}, currency.BRL)

	assert.Nil(t, result)
	require.Error(t, err)
	// The message carries the signed difference in the expense currency.
	assert.Contains(t, err.Error(), "0,50 BRL")
}

func TestBuilder_ByPercentageValid(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:            "200",
		Currency:          currency.EUR,
		SplitType:         SplitTypeByPercentage,
		ParticipantIDs:    []string{"a", "b"},
		CustomPercentages: map[string]string{"a": "60", "b": "40"},
	}, currency.EUR)

	require.NoError(t, err)
	require.Len(t, result.Splits, 2)
	assert.InDelta(t, 120, result.Splits[0].Amount, 1e-9)
	assert.InDelta(t, 80, result.Splits[1].Amount, 1e-9)
}

func TestBuilder_ByPercentageMismatchRejected(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:            "200",
		Currency:          currency.EUR,
		SplitType:         SplitTypeByPercentage,
		ParticipantIDs:    []string{"a", "b"},
		CustomPercentages: map[string]string{"a": "60", "b": "30"},
	}, currency.EUR)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10.00%")
}

func TestBuilder_UnknownSplitType(t *testing.T) {
	b := NewBuilder()

	result, err := b.Build(BuildInput{
		Amount:         "100",
		Currency:       currency.BRL,
		SplitType:      SplitType("by_vibes"),
		ParticipantIDs: []string{"a"},
	}, currency.BRL)

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "unknown split type")
}
