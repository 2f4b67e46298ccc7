package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwabenaosei/shopdesk-backend/internal/catalog"
	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
)

type itemLookup interface {
	Get(id int) (catalog.Item, bool)
}

// View is the cart snapshot handed to callers: lines in display order
// plus the recomputed subtotal.
type View struct {
	ID       uuid.UUID       `json:"cart_id"`
	Lines    []Line          `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Service exposes cart session operations.
type Service interface {
	CreateCart(ctx context.Context) View
	GetCart(ctx context.Context, cartID uuid.UUID) (View, error)
	AddItem(ctx context.Context, cartID uuid.UUID, itemID int) (View, error)
	SetQuantity(ctx context.Context, cartID uuid.UUID, itemID, quantity int) (View, error)
	AdjustQuantity(ctx context.Context, cartID uuid.UUID, itemID, delta int) (View, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, itemID int) (View, error)
	Checkout(ctx context.Context, cartID uuid.UUID, fn func(lines []Line, subtotal decimal.Decimal) error) error
}

type service struct {
	store *Store
	items itemLookup
}

// NewService builds a cart service backed by the store and catalog index.
func NewService(store *Store, items itemLookup) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if items == nil {
		return nil, fmt.Errorf("catalog lookup required")
	}
	return &service{store: store, items: items}, nil
}

func (s *service) CreateCart(ctx context.Context) View {
	id := s.store.Create()
	return View{ID: id, Lines: []Line{}, Subtotal: decimal.Zero}
}

func (s *service) GetCart(ctx context.Context, cartID uuid.UUID) (View, error) {
	return s.view(cartID, func(c *Cart) error { return nil })
}

// AddItem resolves the catalog item and appends a quantity-1 line with
// its price snapshot.
func (s *service) AddItem(ctx context.Context, cartID uuid.UUID, itemID int) (View, error) {
	item, ok := s.items.Get(itemID)
	if !ok {
		return View{}, pkgerrors.New(pkgerrors.CodeNotFound, "catalog item not found").
			WithDetails(map[string]any{"item_id": itemID})
	}
	return s.view(cartID, func(c *Cart) error {
		return c.AddItem(item)
	})
}

func (s *service) SetQuantity(ctx context.Context, cartID uuid.UUID, itemID, quantity int) (View, error) {
	return s.view(cartID, func(c *Cart) error {
		return c.SetQuantity(itemID, quantity)
	})
}

func (s *service) AdjustQuantity(ctx context.Context, cartID uuid.UUID, itemID, delta int) (View, error) {
	return s.view(cartID, func(c *Cart) error {
		return c.AdjustQuantity(itemID, delta)
	})
}

func (s *service) RemoveItem(ctx context.Context, cartID uuid.UUID, itemID int) (View, error) {
	return s.view(cartID, func(c *Cart) error {
		return c.RemoveItem(itemID)
	})
}

// Checkout hands the cart's lines and subtotal to fn under the store
// lock. The cart is cleared only when fn returns nil, so a commit that
// fails to record leaves the cart intact.
func (s *service) Checkout(ctx context.Context, cartID uuid.UUID, fn func(lines []Line, subtotal decimal.Decimal) error) error {
	return s.store.Mutate(cartID, func(c *Cart) error {
		if err := fn(c.Lines(), c.Subtotal()); err != nil {
			return err
		}
		c.Clear()
		return nil
	})
}

func (s *service) view(cartID uuid.UUID, fn func(*Cart) error) (View, error) {
	var v View
	err := s.store.Mutate(cartID, func(c *Cart) error {
		if err := fn(c); err != nil {
			return err
		}
		v = View{ID: c.ID, Lines: c.Lines(), Subtotal: c.Subtotal()}
		return nil
	})
	if err != nil {
		return View{}, err
	}
	if v.Lines == nil {
		v.Lines = []Line{}
	}
	return v, nil
}
