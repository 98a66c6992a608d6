package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountFieldTypingAndBlur(t *testing.T) {
	f := NewAmountField(BRL)

	// While typing, only the sanitized raw string is shown.
	f.Type("1234,5")
	assert.Equal(t, "1234,5", f.Display())
	assert.InDelta(t, 1234.5, f.Value(), 1e-9)

	// Blur switches to the fully formatted display.
	f.Blur()
	assert.Equal(t, "1.234,50", f.Display())
	assert.InDelta(t, 1234.5, f.Value(), 1e-9)
}

func TestAmountFieldRejectsInvalidKeystrokes(t *testing.T) {
	f := NewAmountField(USD)

	f.Type("12a.3x45")
	assert.Equal(t, "12.34", f.Display())
	assert.InDelta(t, 12.34, f.Value(), 1e-9)
}

func TestAmountFieldZeroShowsEmpty(t *testing.T) {
	f := NewAmountField(EUR)

	f.Blur()
	assert.Equal(t, "", f.Display())

	f.SetValue(0)
	assert.Equal(t, "", f.Display())
}

func TestAmountFieldSetValue(t *testing.T) {
	f := NewAmountField(BRL)

	f.SetValue(99.9)
	assert.Equal(t, "99,90", f.Display())
	assert.InDelta(t, 99.9, f.Value(), 1e-9)
}
