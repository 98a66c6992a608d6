package currency

// Code is a three-letter currency code from the supported set
type Code string

const (
	BRL Code = "BRL"
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	ARS Code = "ARS"
)

// Supported lists the currencies an expense can be created in
var Supported = []Code{BRL, USD, EUR, GBP, ARS}

// LocaleRule describes how amounts in a currency are written:
// which character separates the decimals and which groups the thousands.
// The two separators are always opposites of each other.
type LocaleRule struct {
	DecimalSeparator   string
	ThousandsSeparator string
}

// RuleFor resolves the locale rule for a currency. BRL amounts are written
// Brazilian-style ("1.234,56"); every other supported currency uses the
// dot-decimal notation ("1,234.56"). Unknown codes get the dot-decimal rule.
func RuleFor(code Code) LocaleRule {
	if code == BRL {
		return LocaleRule{DecimalSeparator: ",", ThousandsSeparator: "."}
	}
	return LocaleRule{DecimalSeparator: ".", ThousandsSeparator: ","}
}

// IsSupported reports whether the code belongs to the supported set
func IsSupported(code Code) bool {
	for _, c := range Supported {
		if c == code {
			return true
		}
	}
	return false
}
