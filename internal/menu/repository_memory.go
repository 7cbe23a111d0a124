package menu

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	dishes []Dish

	// ListErr, when set, is returned by List.
	ListErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ListErr != nil {
		return nil, r.ListErr
	}

	out := make([]Dish, len(r.dishes))
	copy(out, r.dishes)
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.index(id); i >= 0 {
		d := r.dishes[i]
		return &d, nil
	}
	return nil, ErrDishNotFound
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dishes), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, dish *Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	dish.CreatedAt = now
	dish.UpdatedAt = now
	r.dishes = append(r.dishes, *dish)
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, dish *Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(dish.ID)
	if i < 0 {
		return ErrDishNotFound
	}
	dish.CreatedAt = r.dishes[i].CreatedAt
	dish.UpdatedAt = time.Now()
	r.dishes[i] = *dish
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return ErrDishNotFound
	}
	r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
	return nil
}

func (r *InMemoryRepository) SetImage(ctx context.Context, id string, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return ErrDishNotFound
	}
	r.dishes[i].Image = url
	r.dishes[i].UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) index(id string) int {
	for i, d := range r.dishes {
		if d.ID == id {
			return i
		}
	}
	return -1
}
