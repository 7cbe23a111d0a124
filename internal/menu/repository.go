package menu

import (
	"context"
	"errors"
)

var ErrDishNotFound = errors.New("dish not found")

// Repository defines all backend operations on menu items.
type Repository interface {
	// List returns every dish in catalog (insertion) order.
	List(ctx context.Context) ([]Dish, error)
	Get(ctx context.Context, id string) (*Dish, error)
	Count(ctx context.Context) (int, error)

	Create(ctx context.Context, dish *Dish) error
	Update(ctx context.Context, dish *Dish) error
	Delete(ctx context.Context, id string) error
	SetImage(ctx context.Context, id string, url string) error
}
