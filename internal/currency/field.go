package currency

// AmountField is the display/raw pair behind one monetary input. While the
// user types, the display holds the sanitized raw string; on blur it is
// replaced with the fully formatted value. The loose-while-typing,
// strict-on-blur split is a UX contract the forms depend on.
//
// A field is owned by the single input that created it and is not safe for
// concurrent use.
type AmountField struct {
	code    Code
	display string
	raw     float64
}

// NewAmountField creates an empty field for the given currency
func NewAmountField(code Code) *AmountField {
	return &AmountField{code: code}
}

// Type processes the full field content after a keystroke: the display is
// sanitized and the raw value reparsed from it.
func (f *AmountField) Type(text string) {
	f.display = SanitizeInput(text, f.code)
	f.raw = ParseDisplayValue(f.display, f.code)
}

// Blur replaces the display with the formatted form of the raw value
func (f *AmountField) Blur() {
	f.display = FormatValue(f.raw, f.code)
}

// SetValue loads a stored amount into the field, already formatted
func (f *AmountField) SetValue(value float64) {
	f.raw = value
	f.display = FormatValue(value, f.code)
}

// Display returns what the input currently shows
func (f *AmountField) Display() string {
	return f.display
}

// Value returns the canonical numeric value behind the display
func (f *AmountField) Value() float64 {
	return f.raw
}
