// Package currency renders amounts for display. It is a presentation
// helper only; domain math stays on decimal.Decimal.
package currency

import (
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Format renders an amount with the currency's display symbol, e.g.
// "GH₵125.00".
func Format(amount decimal.Decimal, c enums.Currency) string {
	return c.Symbol() + amount.StringFixed(2)
}
