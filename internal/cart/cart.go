package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwabenaosei/shopdesk-backend/internal/catalog"
	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
)

// Line is one catalog item plus a quantity. Name and unit price are
// snapshotted when the line is added; catalog price changes after that do
// not reach lines already in a cart.
type Line struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Total returns quantity × unit price for the line.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the in-progress, uncommitted set of line items for one sale.
// Lines keep insertion order and hold at most one line per item id. A
// failed operation leaves the cart exactly as it was.
//
// Callers must serialize access; Store does so for the HTTP host.
type Cart struct {
	ID    uuid.UUID
	lines []Line
}

// NewCart returns an empty cart with a fresh id.
func NewCart() *Cart {
	return &Cart{ID: uuid.New()}
}

// AddItem appends a quantity-1 line for the item, snapshotting its name
// and price.
func (c *Cart) AddItem(item catalog.Item) error {
	if c.indexOf(item.ID) >= 0 {
		return pkgerrors.New(pkgerrors.CodeDuplicateItem, "item is already in the cart").
			WithDetails(map[string]any{"item_id": item.ID})
	}
	c.lines = append(c.lines, Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	})
	return nil
}

// SetQuantity replaces the line's quantity with an absolute value.
func (c *Cart) SetQuantity(itemID, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be at least 1").
			WithDetails(map[string]any{"item_id": itemID, "quantity": quantity})
	}
	idx := c.indexOf(itemID)
	if idx < 0 {
		return itemNotFound(itemID)
	}
	c.lines[idx].Quantity = quantity
	return nil
}

// AdjustQuantity applies a delta to the line's quantity, clamping at 1.
// Decrementing never removes the line; RemoveItem is the only removal
// path. Clamp-at-1 mirrors the dashboard's stepper and is a product
// decision, revisit there rather than here.
func (c *Cart) AdjustQuantity(itemID, delta int) error {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return itemNotFound(itemID)
	}
	next := c.lines[idx].Quantity + delta
	if next < 1 {
		next = 1
	}
	c.lines[idx].Quantity = next
	return nil
}

// RemoveItem deletes the line, preserving the order of the rest.
func (c *Cart) RemoveItem(itemID int) error {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return itemNotFound(itemID)
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	return nil
}

// Subtotal recomputes Σ quantity × unit price over the current lines. It
// is never stored.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.lines {
		sum = sum.Add(line.Total())
	}
	return sum
}

// Lines returns a copy of the current lines in display order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear resets the cart to empty. Only the sale committer calls this,
// strictly after a confirmed ledger append.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) indexOf(itemID int) int {
	for i, line := range c.lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}

func itemNotFound(itemID int) error {
	return pkgerrors.New(pkgerrors.CodeItemNotFound, "item is not in the cart").
		WithDetails(map[string]any{"item_id": itemID})
}
