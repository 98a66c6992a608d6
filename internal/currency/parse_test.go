package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "dot decimal", input: "10.50", want: 10.50},
		{name: "comma decimal", input: "10,50", want: 10.50},
		{name: "integer", input: "42", want: 42},
		{name: "leading whitespace", input: "  7.25", want: 7.25},
		{name: "negative", input: "-3,10", want: -3.10},
		{name: "explicit plus", input: "+2.5", want: 2.5},
		{name: "bare fraction", input: ",5", want: 0.5},
		{name: "trailing separator", input: "12.", want: 12},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "abc", want: 0},
		{name: "sign only", input: "-", want: 0},
		{name: "trailing garbage truncates", input: "12.5abc", want: 12.5},
		// Mixed-separator input truncates at the second separator. This is
		// the documented behavior for a function that only accepts
		// single-separator decimals, not a thousands-aware parser.
		{name: "mixed separators truncate", input: "1,234.56", want: 1.234},
		{name: "two dots truncate", input: "1.2.3", want: 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.input), 1e-9)
		})
	}
}

func TestParseDisplayValue(t *testing.T) {
	tests := []struct {
		name    string
		display string
		code    Code
		want    float64
	}{
		{name: "BRL with grouping", display: "1.234,56", code: BRL, want: 1234.56},
		{name: "USD with grouping", display: "1,234.56", code: USD, want: 1234.56},
		{name: "BRL plain", display: "99,90", code: BRL, want: 99.90},
		{name: "EUR plain", display: "99.90", code: EUR, want: 99.90},
		{name: "negative BRL", display: "-1.500,00", code: BRL, want: -1500},
		{name: "residual characters stripped", display: "R$ 12,30", code: BRL, want: 12.30},
		{name: "empty", display: "", code: USD, want: 0},
		{name: "garbage", display: "abc", code: USD, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseDisplayValue(tt.display, tt.code), 1e-9)
		})
	}
}
