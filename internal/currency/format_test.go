package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		code  Code
		want  string
	}{
		{name: "BRL grouping", value: 1234.56, code: BRL, want: "1.234,56"},
		{name: "USD grouping", value: 1234.56, code: USD, want: "1,234.56"},
		{name: "zero shows empty", value: 0, code: BRL, want: ""},
		{name: "no grouping under a thousand", value: 999.9, code: EUR, want: "999.90"},
		{name: "exactly a thousand", value: 1000, code: USD, want: "1,000.00"},
		{name: "millions", value: 1234567.89, code: BRL, want: "1.234.567,89"},
		{name: "negative", value: -42.5, code: GBP, want: "-42.50"},
		{name: "negative with grouping", value: -1500, code: BRL, want: "-1.500,00"},
		{name: "cents only", value: 0.05, code: ARS, want: "0.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, tt.code))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []float64{0.01, 0.99, 1, 12.34, 999.99, 1000, 1234.56, 98765.43, 1234567.89}
	for _, code := range Supported {
		for _, v := range values {
			got := ParseDisplayValue(FormatValue(v, code), code)
			assert.InDelta(t, v, got, 0.005, "value %v in %s", v, code)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		code Code
		want string
	}{
		{name: "digits pass through", raw: "1234", code: USD, want: "1234"},
		{name: "BRL accepts comma", raw: "12,34", code: BRL, want: "12,34"},
		{name: "BRL rejects dot", raw: "12.34", code: BRL, want: "1234"},
		{name: "USD accepts dot", raw: "12.34", code: USD, want: "12.34"},
		{name: "USD rejects comma", raw: "12,34", code: USD, want: "1234"},
		{name: "second separator dropped", raw: "1,2,3", code: BRL, want: "1,23"},
		{name: "at most two decimals", raw: "1,2345", code: BRL, want: "1,23"},
		{name: "letters dropped", raw: "a1b2c3", code: USD, want: "123"},
		{name: "separator first", raw: ",5", code: BRL, want: ",5"},
		{name: "empty", raw: "", code: USD, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.raw, tt.code))
		})
	}
}
