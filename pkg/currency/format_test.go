package currency

import (
	"testing"

	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   string
		currency enums.Currency
		want     string
	}{
		{amount: "125", currency: enums.CurrencyGHS, want: "GH₵125.00"},
		{amount: "37.5", currency: enums.CurrencyGHS, want: "GH₵37.50"},
		{amount: "0", currency: enums.CurrencyUSD, want: "$0.00"},
	}
	for _, tt := range tests {
		got := Format(decimal.RequireFromString(tt.amount), tt.currency)
		if got != tt.want {
			t.Fatalf("Format(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}
