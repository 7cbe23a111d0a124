package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status an admin may move an order to.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus is case-insensitive and ignores surrounding whitespace.
func ParseStatus(s string) (Status, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

const (
	TypeTakeaway = "takeaway"
	TypeDelivery = "delivery"
)

type Order struct {
	ID                  string          `json:"id"`
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	OrderType           string          `json:"order_type"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	Total               decimal.Decimal `json:"total"`
	Status              Status          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	Items               []Item          `json:"order_items"`
}

// Item is one order line. DishName and DishCategory are filled from
// the menu when orders are listed.
type Item struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	MenuItemID   string          `json:"menu_item_id"`
	DishName     string          `json:"dish_name"`
	DishCategory string          `json:"dish_category"`
	Quantity     int             `json:"quantity"`
	SpiceLevel   int             `json:"spice_level"`
	ItemPrice    decimal.Decimal `json:"item_price"`
}
