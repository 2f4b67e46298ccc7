package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
)

// Sale is one committed transaction. It is immutable once appended to
// the ledger: lines are deep-copied from the cart at commit time and
// TotalAmount always equals Σ quantity × unit price over them.
type Sale struct {
	SalesID       string              `json:"sales_id"`
	Timestamp     time.Time           `json:"timestamp"`
	Lines         []cart.Line         `json:"lines"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Currency      enums.Currency      `json:"currency"`
}

// Units returns the total quantity across all lines.
func (s Sale) Units() int {
	units := 0
	for _, line := range s.Lines {
		units += line.Quantity
	}
	return units
}

func (s Sale) clone() Sale {
	out := s
	out.Lines = make([]cart.Line, len(s.Lines))
	copy(out.Lines, s.Lines)
	return out
}
