package sales

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kwabenaosei/shopdesk-backend/pkg/pagination"
)

// Stats are the dashboard aggregates, a pure projection of the ledger
// contents.
type Stats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalUnitsSold int             `json:"total_units_sold"`
	EntryCount     int             `json:"entry_count"`
}

// Ledger is the append-only collection of committed sales. Storage is
// chronological; listings read most-recent-first. A mutex serializes the
// single writer against the many readers so every read sees a consistent
// snapshot.
type Ledger struct {
	mu          sync.Mutex
	sales       []Sale
	subscribers []func(Sale, Stats)
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append records a committed sale. It assigns no derived fields.
// Subscribers are notified with the fresh aggregate before Append
// returns; callbacks must not call back into the ledger.
func (l *Ledger) Append(sale Sale) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sales = append(l.sales, sale.clone())

	if len(l.subscribers) > 0 {
		stats := l.aggregateLocked()
		for _, notify := range l.subscribers {
			notify(sale.clone(), stats)
		}
	}
}

// Subscribe registers an observer invoked with the appended sale and
// the recomputed stats after every append.
func (l *Ledger) Subscribe(fn func(Sale, Stats)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// Aggregate recomputes the dashboard totals from the current contents.
// Nothing is cached; a stale aggregate is a correctness bug at this data
// scale, not a performance win.
func (l *Ledger) Aggregate() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.aggregateLocked()
}

func (l *Ledger) aggregateLocked() Stats {
	stats := Stats{TotalRevenue: decimal.Zero}
	for _, sale := range l.sales {
		stats.TotalRevenue = stats.TotalRevenue.Add(sale.TotalAmount)
		stats.TotalUnitsSold += sale.Units()
		stats.EntryCount++
	}
	return stats
}

// Page returns one page of sales, most recent first, plus the page the
// request clamped to and the page count. Out-of-range pages clamp;
// navigation controls should use the totals to disable themselves
// instead of requesting past the end.
func (l *Ledger) Page(page, pageSize int) (items []Sale, clampedPage, totalPages int) {
	pageSize = pagination.NormalizePageSize(pageSize)

	l.mu.Lock()
	defer l.mu.Unlock()

	count := len(l.sales)
	totalPages = pagination.TotalPages(count, pageSize)
	clampedPage = pagination.ClampPage(page, totalPages)
	lo, hi := pagination.Bounds(clampedPage, pageSize, count)

	items = make([]Sale, 0, hi-lo)
	for i := lo; i < hi; i++ {
		// index from the end: newest entries first
		items = append(items, l.sales[count-1-i].clone())
	}
	return items, clampedPage, totalPages
}

// Detail looks up a sale by id. Absence is the closed state of the
// detail view, not an error.
func (l *Ledger) Detail(salesID string) (Sale, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, sale := range l.sales {
		if sale.SalesID == salesID {
			return sale.clone(), true
		}
	}
	return Sale{}, false
}

// Len returns the number of committed sales.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sales)
}
