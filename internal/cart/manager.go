package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type managedEngine struct {
	engine   *Engine
	lastUsed time.Time
}

// Manager hands out one Engine per cart id, rehydrating lazily. Engines
// idle for longer than the sweep window are dropped and rebuilt from the
// store on next access.
type Manager struct {
	mu      sync.Mutex
	store   Store
	engines map[string]*managedEngine
	now     func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store:   store,
		engines: make(map[string]*managedEngine),
		now:     time.Now,
	}
}

func NewCartID() string {
	return uuid.New().String()
}

func (m *Manager) Engine(ctx context.Context, cartID string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if me, ok := m.engines[cartID]; ok {
		me.lastUsed = m.now()
		return me.engine
	}

	e := NewEngine(ctx, cartID, m.store)
	m.engines[cartID] = &managedEngine{engine: e, lastUsed: m.now()}
	return e
}

// Evict drops the in-memory engine. The next access rehydrates from the store.
func (m *Manager) Evict(cartID string) {
	m.mu.Lock()
	delete(m.engines, cartID)
	m.mu.Unlock()
}

// EvictIdle drops every engine not used within idle and reports how many
// were dropped.
func (m *Manager) EvictIdle(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-idle)
	n := 0
	for id, me := range m.engines {
		if me.lastUsed.Before(cutoff) {
			delete(m.engines, id)
			n++
		}
	}
	return n
}

// Len is the number of engines held in memory.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.engines)
}

// SweepIdle runs EvictIdle every interval until ctx is done.
func (m *Manager) SweepIdle(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.EvictIdle(idle); n > 0 {
				log.Debug().Int("evicted", n).Int("live", m.Len()).Msg("idle carts evicted")
			}
		}
	}
}
