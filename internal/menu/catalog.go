package menu

import (
	"errors"
	"strings"
	"sync"
)

var ErrCatalogNotLoaded = errors.New("catalog not loaded")

// Catalog is the read-only snapshot of dishes the storefront browses.
// It is replaced wholesale whenever the backend catalog changes.
type Catalog struct {
	mu     sync.RWMutex
	dishes []Dish
	loaded bool
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Replace(dishes []Dish) {
	snapshot := make([]Dish, len(dishes))
	copy(snapshot, dishes)

	c.mu.Lock()
	c.dishes = snapshot
	c.loaded = true
	c.mu.Unlock()
}

func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Size returns the number of dishes in the snapshot.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dishes)
}

// Filter applies category and free-text search to the snapshot.
// An unloaded catalog is reported as ErrCatalogNotLoaded, never as an
// empty result.
func (c *Catalog) Filter(category, search string) ([]Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, ErrCatalogNotLoaded
	}
	return Filter(c.dishes, category, search), nil
}

// Lookup returns a copy of the dish with the given id.
func (c *Catalog) Lookup(id string) (Dish, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

// Filter keeps dishes whose category matches (or category is "All") and,
// when search is not blank, whose name, ingredients or description
// contain search case-insensitively. Input order is preserved.
func Filter(dishes []Dish, category, search string) []Dish {
	out := make([]Dish, 0, len(dishes))

	query := ""
	if strings.TrimSpace(search) != "" {
		query = strings.ToLower(search)
	}

	for _, d := range dishes {
		if category != AllCategories && d.Category != category {
			continue
		}
		if query != "" && !matches(d, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matches(d Dish, query string) bool {
	return strings.Contains(strings.ToLower(d.Name), query) ||
		strings.Contains(strings.ToLower(d.Ingredients), query) ||
		(d.Description != "" && strings.Contains(strings.ToLower(d.Description), query))
}
