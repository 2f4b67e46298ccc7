package enums

import "fmt"

// Currency represents supported monetary denominations for sale totals.
type Currency string

const (
	CurrencyGHS Currency = "GHS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyNGN Currency = "NGN"
)

var validCurrencies = []Currency{
	CurrencyGHS,
	CurrencyUSD,
	CurrencyEUR,
	CurrencyNGN,
}

var currencySymbols = map[Currency]string{
	CurrencyGHS: "GH₵",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyNGN: "₦",
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display prefix for formatted amounts.
func (c Currency) Symbol() string {
	if symbol, ok := currencySymbols[c]; ok {
		return symbol
	}
	return string(c) + " "
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
