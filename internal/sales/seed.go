package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
)

// Seed returns the demo day's seven transactions, chronologically,
// matching the dashboard's pre-populated transaction table.
func Seed() []Sale {
	day := time.Date(2024, time.November, 8, 0, 0, 0, 0, time.UTC)
	entries := []struct {
		id     string
		hour   int
		minute int
		itemID int
		name   string
		qty    int
		price  string
		method enums.PaymentMethod
	}{
		{"INV-SEED01", 9, 6, 1, "Men's trousers", 1, "300.00", enums.PaymentMethodCreditCard},
		{"INV-SEED02", 10, 0, 6, "Children's trench coats", 2, "100.00", enums.PaymentMethodBankTransfer},
		{"INV-SEED03", 11, 30, 5, "Women's loungewear", 9, "60.00", enums.PaymentMethodCash},
		{"INV-SEED04", 12, 15, 4, "Men's gloves", 3, "150.00", enums.PaymentMethodCash},
		{"INV-SEED05", 13, 45, 3, "Women's bags", 5, "70.00", enums.PaymentMethodBankTransfer},
		{"INV-SEED06", 14, 0, 2, "Women's scarves", 4, "37.50", enums.PaymentMethodMobileMoney},
		{"INV-SEED07", 14, 34, 1, "Men's trousers", 3, "125.00", enums.PaymentMethodCreditCard},
	}

	seeded := make([]Sale, 0, len(entries))
	for _, e := range entries {
		price := decimal.RequireFromString(e.price)
		line := cart.Line{ItemID: e.itemID, Name: e.name, UnitPrice: price, Quantity: e.qty}
		seeded = append(seeded, Sale{
			SalesID:       e.id,
			Timestamp:     day.Add(time.Duration(e.hour)*time.Hour + time.Duration(e.minute)*time.Minute),
			Lines:         []cart.Line{line},
			PaymentMethod: e.method,
			TotalAmount:   line.Total(),
			Currency:      enums.CurrencyGHS,
		})
	}
	return seeded
}

// SeedLedger appends the demo transactions to the ledger.
func SeedLedger(ledger *Ledger) {
	for _, sale := range Seed() {
		ledger.Append(sale)
	}
}
