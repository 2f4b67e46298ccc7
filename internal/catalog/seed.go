package catalog

import "github.com/shopspring/decimal"

// Seed returns the demo inventory the dashboard ships with.
func Seed() []Item {
	return []Item{
		{ID: 1, Name: "Men's trousers", UnitPrice: decimal.New(12500, -2), InStock: 50},
		{ID: 2, Name: "Women's scarves", UnitPrice: decimal.New(3750, -2), InStock: 30},
		{ID: 3, Name: "Women's bags", UnitPrice: decimal.New(7000, -2), InStock: 25},
		{ID: 4, Name: "Men's gloves", UnitPrice: decimal.New(15000, -2), InStock: 40},
		{ID: 5, Name: "Women's loungewear", UnitPrice: decimal.New(6000, -2), InStock: 35},
		{ID: 6, Name: "Children's trench coats", UnitPrice: decimal.New(10000, -2), InStock: 20},
	}
}
