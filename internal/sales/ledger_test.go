package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
)

func seededLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger()
	SeedLedger(ledger)
	require.Equal(t, 7, ledger.Len())
	return ledger
}

func TestAggregateOverSeedData(t *testing.T) {
	ledger := seededLedger(t)

	stats := ledger.Aggregate()
	// 300 + 200 + 540 + 450 + 350 + 150 + 375
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("2365.00")),
		"unexpected revenue %s", stats.TotalRevenue)
	assert.Equal(t, 27, stats.TotalUnitsSold)
	assert.Equal(t, 7, stats.EntryCount)
}

func TestAggregateRecomputesAfterAppend(t *testing.T) {
	ledger := seededLedger(t)
	before := ledger.Aggregate()

	ledger.Append(Sale{
		SalesID:   "INV-NEW",
		Timestamp: time.Now(),
		Lines: []cart.Line{
			{ItemID: 4, Name: "Men's gloves", UnitPrice: decimal.RequireFromString("150.00"), Quantity: 2},
		},
		PaymentMethod: enums.PaymentMethodCash,
		TotalAmount:   decimal.RequireFromString("300.00"),
		Currency:      enums.CurrencyGHS,
	})

	after := ledger.Aggregate()
	assert.True(t, after.TotalRevenue.Sub(before.TotalRevenue).Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, before.TotalUnitsSold+2, after.TotalUnitsSold)
	assert.Equal(t, before.EntryCount+1, after.EntryCount)
}

func TestPageMostRecentFirst(t *testing.T) {
	ledger := seededLedger(t)

	items, page, totalPages := ledger.Page(1, 3)
	require.Equal(t, 3, totalPages)
	assert.Equal(t, 1, page)
	require.Len(t, items, 3)
	assert.Equal(t, "INV-SEED07", items[0].SalesID)
	assert.Equal(t, "INV-SEED06", items[1].SalesID)
	assert.Equal(t, "INV-SEED05", items[2].SalesID)

	items, page, _ = ledger.Page(3, 3)
	assert.Equal(t, 3, page)
	require.Len(t, items, 1)
	assert.Equal(t, "INV-SEED01", items[0].SalesID)
}

func TestPageClampsOutOfRange(t *testing.T) {
	ledger := seededLedger(t)

	items, page, totalPages := ledger.Page(4, 3)
	assert.Equal(t, 3, totalPages)
	assert.Equal(t, 3, page, "page past the end clamps to the last page")
	require.Len(t, items, 1)

	items, page, _ = ledger.Page(0, 3)
	assert.Equal(t, 1, page)
	require.Len(t, items, 3)
}

func TestPageSingleFullPage(t *testing.T) {
	ledger := seededLedger(t)

	items, page, totalPages := ledger.Page(1, 7)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, totalPages)
	assert.Len(t, items, 7)
}

func TestDetail(t *testing.T) {
	ledger := seededLedger(t)

	sale, ok := ledger.Detail("INV-SEED04")
	require.True(t, ok)
	assert.Equal(t, enums.PaymentMethodCash, sale.PaymentMethod)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("450.00")))

	_, ok = ledger.Detail("INV-999")
	assert.False(t, ok, "unknown id is the closed detail state, not an error")
}

func TestAppendDeepCopiesLines(t *testing.T) {
	ledger := NewLedger()
	lines := []cart.Line{
		{ItemID: 1, Name: "Men's trousers", UnitPrice: decimal.RequireFromString("125.00"), Quantity: 3},
	}
	ledger.Append(Sale{SalesID: "INV-COPY", Lines: lines, TotalAmount: decimal.RequireFromString("375.00")})

	lines[0].Quantity = 99
	stored, ok := ledger.Detail("INV-COPY")
	require.True(t, ok)
	assert.Equal(t, 3, stored.Lines[0].Quantity, "ledger must be decoupled from caller slices")

	stored.Lines[0].Quantity = 42
	again, _ := ledger.Detail("INV-COPY")
	assert.Equal(t, 3, again.Lines[0].Quantity, "detail copies must not write back")
}

func TestSubscribeNotifiedOnAppend(t *testing.T) {
	ledger := NewLedger()
	var seenSales []string
	var seenStats []Stats
	ledger.Subscribe(func(sale Sale, stats Stats) {
		seenSales = append(seenSales, sale.SalesID)
		seenStats = append(seenStats, stats)
	})
	ledger.Subscribe(nil)

	SeedLedger(ledger)
	require.Len(t, seenStats, 7)
	assert.Equal(t, "INV-SEED01", seenSales[0])
	assert.Equal(t, "INV-SEED07", seenSales[6])
	assert.Equal(t, 1, seenStats[0].EntryCount)
	assert.Equal(t, 7, seenStats[6].EntryCount)
	assert.True(t, seenStats[6].TotalRevenue.Equal(decimal.RequireFromString("2365.00")))
}
