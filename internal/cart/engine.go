package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/menu"
	"storefront/internal/notice"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidSpiceLevel = errors.New("spice level must be between 1 and 5")
	ErrItemNotFound      = errors.New("cart item not found")
)

const keyPrefix = "storefront_cart_v1:"

// StoreKey is the cache key a cart is persisted under.
func StoreKey(cartID string) string {
	return keyPrefix + cartID
}

// Engine owns one cart. All mutations go through it and each one is
// written through to the store before the lock is released.
type Engine struct {
	mu    sync.Mutex
	key   string
	store Store
	items []LineItem
}

// NewEngine rehydrates the cart from the store. Anything unreadable
// yields an empty cart.
func NewEngine(ctx context.Context, cartID string, store Store) *Engine {
	e := &Engine{
		key:   StoreKey(cartID),
		store: store,
		items: []LineItem{},
	}
	e.items = e.rehydrate(ctx)
	return e
}

func (e *Engine) rehydrate(ctx context.Context) []LineItem {
	raw, err := e.store.Load(ctx, e.key)
	if errors.Is(err, ErrNotCached) {
		return []LineItem{}
	}
	if err != nil {
		log.Warn().Err(err).Str("key", e.key).Msg("cart cache read failed, starting empty")
		return []LineItem{}
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", e.key).Msg("corrupt cart cache, starting empty")
		return []LineItem{}
	}
	for _, li := range items {
		if !li.valid() {
			log.Warn().Str("key", e.key).Msg("invalid cart cache entry, starting empty")
			return []LineItem{}
		}
	}

	merged := mergeDuplicates(items)
	if len(merged) != len(items) {
		log.Warn().Str("key", e.key).Int("lines", len(items)).Int("merged", len(merged)).
			Msg("duplicate cart cache lines merged")
	}
	return merged
}

// mergeDuplicates folds lines sharing a dish id and spice level into the
// first of them, keeping first-seen order.
func mergeDuplicates(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		found := false
		for j := range out {
			if out[j].Dish.ID == li.Dish.ID && out[j].SelectedSpiceLevel == li.SelectedSpiceLevel {
				out[j].SelectedQuantity += li.SelectedQuantity
				found = true
				break
			}
		}
		if !found {
			out = append(out, li)
		}
	}
	return out
}

// persist must be called with mu held.
func (e *Engine) persist(ctx context.Context) {
	raw, err := json.Marshal(e.items)
	if err != nil {
		log.Error().Err(err).Str("key", e.key).Msg("encode cart")
		return
	}
	if err := e.store.Save(ctx, e.key, raw); err != nil {
		log.Warn().Err(err).Str("key", e.key).Msg("cart cache write failed")
	}
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// AddItem merges into the line item with the same dish id and spice
// level, or appends a new one.
func (e *Engine) AddItem(ctx context.Context, dish menu.Dish, quantity, spiceLevel int) (*notice.Notice, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !validSpiceLevel(spiceLevel) {
		return nil, ErrInvalidSpiceLevel
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.indexOf(dish.ID, spiceLevel, -1); i >= 0 {
		e.items[i].SelectedQuantity += quantity
		e.persist(ctx)
		return notice.Info("Updated cart", fmt.Sprintf("%s quantity updated", dish.Name)), nil
	}

	e.items = append(e.items, LineItem{
		Dish:               dish,
		SelectedQuantity:   quantity,
		SelectedSpiceLevel: spiceLevel,
	})
	e.persist(ctx)
	return notice.Info("Added to cart", fmt.Sprintf("%s added successfully", dish.Name)), nil
}

// RemoveItem deletes the line item at index. An out of range index
// leaves the cart untouched.
func (e *Engine) RemoveItem(ctx context.Context, index int) (*notice.Notice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeLocked(ctx, index)
}

func (e *Engine) removeLocked(ctx context.Context, index int) (*notice.Notice, error) {
	if index < 0 || index >= len(e.items) {
		return nil, fmt.Errorf("%w: index %d", ErrItemNotFound, index)
	}

	removed := e.items[index]
	e.items = append(e.items[:index], e.items[index+1:]...)
	e.persist(ctx)

	return notice.Info("Removed from cart", fmt.Sprintf("%s removed", removed.Dish.Name)), nil
}

// UpdateQuantity sets the quantity at index. A quantity of zero or less
// removes the item.
func (e *Engine) UpdateQuantity(ctx context.Context, index, quantity int) (*notice.Notice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		return e.removeLocked(ctx, index)
	}
	if index < 0 || index >= len(e.items) {
		return nil, fmt.Errorf("%w: index %d", ErrItemNotFound, index)
	}

	e.items[index].SelectedQuantity = quantity
	e.persist(ctx)

	return notice.Info("Updated cart", fmt.Sprintf("%s quantity updated", e.items[index].Dish.Name)), nil
}

// UpdateSpiceLevel changes the spice level at index. If another line
// item for the same dish already has that level, the two are merged
// into the existing one.
func (e *Engine) UpdateSpiceLevel(ctx context.Context, index, spiceLevel int) (*notice.Notice, error) {
	if !validSpiceLevel(spiceLevel) {
		return nil, ErrInvalidSpiceLevel
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.items) {
		return nil, fmt.Errorf("%w: index %d", ErrItemNotFound, index)
	}

	item := e.items[index]
	if item.SelectedSpiceLevel == spiceLevel {
		return notice.Info("Updated cart", fmt.Sprintf("%s spice level updated", item.Dish.Name)), nil
	}

	if j := e.indexOf(item.Dish.ID, spiceLevel, index); j >= 0 {
		e.items[j].SelectedQuantity += item.SelectedQuantity
		e.items = append(e.items[:index], e.items[index+1:]...)
		e.persist(ctx)
		return notice.Info("Updated cart", fmt.Sprintf("%s quantity updated", item.Dish.Name)), nil
	}

	e.items[index].SelectedSpiceLevel = spiceLevel
	e.persist(ctx)
	return notice.Info("Updated cart", fmt.Sprintf("%s spice level updated", item.Dish.Name)), nil
}

func (e *Engine) Clear(ctx context.Context) *notice.Notice {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = []LineItem{}
	e.persist(ctx)

	return notice.Info("Cart cleared", "All items removed from cart")
}

// RemoveOrdered takes the ordered quantities out of the cart and returns
// what is left. Lines added or grown after the order was copied stay.
func (e *Engine) RemoveOrdered(ctx context.Context, ordered []LineItem) []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := make([]LineItem, 0, len(e.items))
	for _, li := range e.items {
		for _, o := range ordered {
			if o.Dish.ID == li.Dish.ID && o.SelectedSpiceLevel == li.SelectedSpiceLevel {
				li.SelectedQuantity -= o.SelectedQuantity
			}
		}
		if li.SelectedQuantity > 0 {
			kept = append(kept, li)
		}
	}
	e.items = kept
	e.persist(ctx)

	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

// Items returns a copy of the line items in order.
func (e *Engine) Items() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine) TotalPrice() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TotalPrice(e.items)
}

func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TotalItems(e.items)
}

func (e *Engine) indexOf(dishID string, spiceLevel, skip int) int {
	for i, li := range e.items {
		if i == skip {
			continue
		}
		if li.Dish.ID == dishID && li.SelectedSpiceLevel == spiceLevel {
			return i
		}
	}
	return -1
}
