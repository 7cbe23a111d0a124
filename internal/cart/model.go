package cart

import (
	"storefront/internal/menu"

	"github.com/shopspring/decimal"
)

const (
	MinSpiceLevel = 1
	MaxSpiceLevel = 5
)

// LineItem is one (dish, spice level) pairing in a cart. Dish is a value
// copy taken when the item was added.
type LineItem struct {
	Dish               menu.Dish `json:"dish"`
	SelectedQuantity   int       `json:"selected_quantity"`
	SelectedSpiceLevel int       `json:"selected_spice_level"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Dish.Price.Mul(decimal.NewFromInt(int64(li.SelectedQuantity)))
}

func (li LineItem) valid() bool {
	return li.Dish.ID != "" &&
		li.SelectedQuantity >= 1 &&
		validSpiceLevel(li.SelectedSpiceLevel)
}

func validSpiceLevel(level int) bool {
	return level >= MinSpiceLevel && level <= MaxSpiceLevel
}

// TotalPrice sums price × quantity without rounding.
func TotalPrice(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.LineTotal())
	}
	return total
}

func TotalItems(items []LineItem) int {
	n := 0
	for _, li := range items {
		n += li.SelectedQuantity
	}
	return n
}
