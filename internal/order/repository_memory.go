package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository is used in tests. CreateOrderErr and CreateItemsErr
// make the matching call fail.
type InMemoryRepository struct {
	mu     sync.Mutex
	orders map[string]*Order
	ids    []string

	CreateOrderErr error
	CreateItemsErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]*Order)}
}

func (r *InMemoryRepository) CreateOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateOrderErr != nil {
		return r.CreateOrderErr
	}

	o.ID = uuid.New().String()
	o.CreatedAt = time.Now()

	stored := *o
	stored.Items = []Item{}
	r.orders[o.ID] = &stored
	r.ids = append(r.ids, o.ID)
	return nil
}

func (r *InMemoryRepository) CreateItems(ctx context.Context, orderID string, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateItemsErr != nil {
		return r.CreateItemsErr
	}

	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	for _, it := range items {
		it.ID = uuid.New().String()
		it.OrderID = orderID
		o.Items = append(o.Items, it)
	}
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, status Status) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// newest first
	out := []Order{}
	for i := len(r.ids) - 1; i >= 0; i-- {
		o := r.orders[r.ids[i]]
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		cp.Items = append([]Item{}, o.Items...)
		out = append(out, cp)
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	return nil
}
