package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSplitsTotal(t *testing.T) {
	tests := []struct {
		name           string
		amounts        []float64
		total          float64
		wantValid      bool
		wantDifference float64
	}{
		{name: "exact", amounts: []float64{60, 40}, total: 100, wantValid: true, wantDifference: 0},
		{name: "within tolerance", amounts: []float64{33.33, 33.33, 33.33}, total: 100, wantValid: true, wantDifference: 0.01},
		{name: "under by too much", amounts: []float64{50, 40}, total: 100, wantValid: false, wantDifference: 10},
		{name: "over pays negative difference", amounts: []float64{70, 40}, total: 100, wantValid: false, wantDifference: -10},
		{name: "just past tolerance", amounts: []float64{99.98}, total: 100, wantValid: false, wantDifference: 0.02},
		{name: "no allocations", amounts: nil, total: 100, wantValid: false, wantDifference: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocations := make([]Allocation, len(tt.amounts))
			for i, a := range tt.amounts {
				allocations[i] = Allocation{ParticipantID: "p", Amount: a}
			}

			v := ValidateSplitsTotal(allocations, tt.total, DefaultTolerance)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.InDelta(t, tt.wantDifference, v.Difference, 1e-9)
		})
	}
}

func TestValidatePercentagesTotal(t *testing.T) {
	tests := []struct {
		name           string
		percentages    map[string]string
		participantIDs []string
		wantValid      bool
		wantDifference float64
	}{
		{
			name:           "exact hundred",
			percentages:    map[string]string{"a": "60", "b": "40"},
			participantIDs: []string{"a", "b"},
			wantValid:      true,
			wantDifference: 0,
		},
		{
			name:           "comma decimals within tolerance",
			percentages:    map[string]string{"a": "33,33", "b": "33,33", "c": "33,33"},
			participantIDs: []string{"a", "b", "c"},
			wantValid:      true,
			wantDifference: 0.01,
		},
		{
			name:           "short of hundred",
			percentages:    map[string]string{"a": "50", "b": "30"},
			participantIDs: []string{"a", "b"},
			wantValid:      false,
			wantDifference: 20,
		},
		{
			name:           "over hundred is negative",
			percentages:    map[string]string{"a": "70", "b": "40"},
			participantIDs: []string{"a", "b"},
			wantValid:      false,
			wantDifference: -10,
		},
		{
			name:           "entries for other ids are ignored",
			percentages:    map[string]string{"a": "60", "b": "40", "ghost": "25"},
			participantIDs: []string{"a", "b"},
			wantValid:      true,
			wantDifference: 0,
		},
		{
			name:           "missing entries count as zero",
			percentages:    map[string]string{"a": "100"},
			participantIDs: []string{"a", "b"},
			wantValid:      true,
			wantDifference: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidatePercentagesTotal(tt.percentages, tt.participantIDs, DefaultTolerance)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.InDelta(t, tt.wantDifference, v.Difference, 1e-9)
		})
	}
}
