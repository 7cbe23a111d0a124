package order

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

type Repository interface {
	// CreateOrder stores the header and fills in ID and CreatedAt.
	CreateOrder(ctx context.Context, o *Order) error
	CreateItems(ctx context.Context, orderID string, items []Item) error
	// List returns orders newest first. An empty status means all.
	List(ctx context.Context, status Status) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
