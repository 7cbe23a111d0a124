package auth

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the data-access contract.
// Service depends ONLY on this interface.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// FindValid returns the session only if it expires strictly after now.
	FindValid(ctx context.Context, token string, now time.Time) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
