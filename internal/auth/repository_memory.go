package auth

import (
	"context"
	"sync"
	"time"
)

type InMemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*Session

	// Err, when set, is returned by every call.
	Err error
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[string]*Session),
	}
}

func (r *InMemorySessionRepository) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	cp := *s
	r.sessions[s.Token] = &cp
	return nil
}

func (r *InMemorySessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	s, ok := r.sessions[token]
	if !ok || !s.ValidAt(now) {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *InMemorySessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	delete(r.sessions, token)
	return nil
}

func (r *InMemorySessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for token, s := range r.sessions {
		if !s.ValidAt(now) {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}

func (r *InMemorySessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
