package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
)

// CartCheckout is the slice of the cart service the committer needs: run
// fn against the cart's current lines and subtotal, clearing the cart
// only when fn reports the sale durably recorded.
type CartCheckout interface {
	Checkout(ctx context.Context, cartID uuid.UUID, fn func(lines []cart.Line, subtotal decimal.Decimal) error) error
}

// ListResult is one page of the transaction ledger.
type ListResult struct {
	Items        []Sale `json:"items"`
	Page         int    `json:"page"`
	TotalPages   int    `json:"total_pages"`
	TotalEntries int    `json:"total_entries"`
}

// Service exposes sale commit and ledger read operations.
type Service interface {
	Commit(ctx context.Context, cartID uuid.UUID, method enums.PaymentMethod) (Sale, error)
	List(ctx context.Context, page, pageSize int) ListResult
	Stats(ctx context.Context) Stats
	Detail(ctx context.Context, salesID string) (Sale, bool)
}

// ServiceParams collects the committer's collaborators. NewID and Now
// default to uuid-derived ids and the wall clock.
type ServiceParams struct {
	Ledger   *Ledger
	Carts    CartCheckout
	Currency enums.Currency
	NewID    func() string
	Now      func() time.Time
}

type service struct {
	ledger   *Ledger
	carts    CartCheckout
	currency enums.Currency
	newID    func() string
	now      func() time.Time
}

// NewService wires a sale committer over the ledger and cart checkout.
func NewService(params ServiceParams) (Service, error) {
	if params.Ledger == nil {
		return nil, fmt.Errorf("ledger required")
	}
	if params.Carts == nil {
		return nil, fmt.Errorf("cart checkout required")
	}
	currency := params.Currency
	if currency == "" {
		currency = enums.CurrencyGHS
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("invalid currency %q", currency)
	}
	newID := params.NewID
	if newID == nil {
		newID = NewSalesID
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		ledger:   params.Ledger,
		carts:    params.Carts,
		currency: currency,
		newID:    newID,
		now:      now,
	}, nil
}

// NewSalesID returns a fresh invoice-style identifier, e.g. INV-9F2C41AB.
func NewSalesID() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// Commit converts the cart plus a payment method into an immutable Sale.
// The ledger append happens inside the cart checkout, so the cart is
// cleared strictly after the sale is recorded; any failure leaves both
// cart and ledger untouched.
func (s *service) Commit(ctx context.Context, cartID uuid.UUID, method enums.PaymentMethod) (Sale, error) {
	var committed Sale
	err := s.carts.Checkout(ctx, cartID, func(lines []cart.Line, subtotal decimal.Decimal) error {
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeEmptyCart, "cart has no items to record")
		}
		if method == "" {
			return pkgerrors.New(pkgerrors.CodeMissingPaymentMethod, "please select a payment method")
		}
		if !method.IsValid() {
			return pkgerrors.New(pkgerrors.CodeMissingPaymentMethod, "please select a payment method").
				WithDetails(map[string]any{"payment_method": method.String()})
		}

		committed = Sale{
			SalesID:       s.newID(),
			Timestamp:     s.now(),
			Lines:         lines,
			PaymentMethod: method,
			TotalAmount:   subtotal,
			Currency:      s.currency,
		}
		s.ledger.Append(committed)
		return nil
	})
	if err != nil {
		return Sale{}, err
	}
	return committed, nil
}

func (s *service) List(ctx context.Context, page, pageSize int) ListResult {
	items, clampedPage, totalPages := s.ledger.Page(page, pageSize)
	return ListResult{
		Items:        items,
		Page:         clampedPage,
		TotalPages:   totalPages,
		TotalEntries: s.ledger.Len(),
	}
}

func (s *service) Stats(ctx context.Context) Stats {
	return s.ledger.Aggregate()
}

func (s *service) Detail(ctx context.Context, salesID string) (Sale, bool) {
	return s.ledger.Detail(salesID)
}
