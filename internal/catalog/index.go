package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Item is one purchasable catalog entry. Items are immutable; stock is
// informational and never decremented by a sale.
type Item struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	InStock   int             `json:"in_stock"`
}

// Index holds the catalog in display order and answers search queries.
// It has no mutation operations.
type Index struct {
	items []Item
	byID  map[int]Item
}

// NewIndex validates the entries and builds a search index over them.
func NewIndex(items []Item) (*Index, error) {
	var errs []error
	byID := make(map[int]Item, len(items))
	for i, item := range items {
		if item.ID <= 0 {
			errs = append(errs, fmt.Errorf("item %d: id must be positive", i))
		}
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, fmt.Errorf("item %d: name is required", i))
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, fmt.Errorf("item %d (%s): unit price cannot be negative", i, item.Name))
		}
		if item.InStock < 0 {
			errs = append(errs, fmt.Errorf("item %d (%s): stock cannot be negative", i, item.Name))
		}
		if _, dup := byID[item.ID]; dup {
			errs = append(errs, fmt.Errorf("item %d (%s): duplicate id %d", i, item.Name, item.ID))
			continue
		}
		byID[item.ID] = item
	}
	if combined := multierr.Combine(errs...); combined != nil {
		return nil, fmt.Errorf("invalid catalog: %w", combined)
	}

	indexed := make([]Item, len(items))
	copy(indexed, items)
	return &Index{items: indexed, byID: byID}, nil
}

// Get returns the item for the id, if present.
func (x *Index) Get(id int) (Item, bool) {
	item, ok := x.byID[id]
	return item, ok
}

// Items returns the full catalog in display order.
func (x *Index) Items() []Item {
	out := make([]Item, len(x.items))
	copy(out, x.items)
	return out
}

// Search returns items whose name contains the query, case-insensitively,
// skipping ids in exclude (items already in the cart). Catalog order is
// preserved. A blank query matches nothing; the search box only lists
// results once something is typed.
func (x *Index) Search(query string, exclude map[int]struct{}) []Item {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var matches []Item
	for _, item := range x.items {
		if _, skip := exclude[item.ID]; skip {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}
