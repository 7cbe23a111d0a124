package feed

import "context"

// OrdersChanged tells subscribers the order list is stale. Clients
// re-fetch the whole list, so events carry no ordering guarantee.
const OrdersChanged = "orders_changed"

type Event struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status,omitempty"`
}

type Feed interface {
	Publish(ctx context.Context, ev Event) error
	// Subscribe returns a channel of events and a cancel func that
	// closes it.
	Subscribe() (<-chan Event, func())
	Close() error
}
