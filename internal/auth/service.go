package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrUnauthenticated = errors.New("not authenticated")
)

const DefaultSessionTTL = 24 * time.Hour

type Service struct {
	repo         SessionRepository
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewService takes the bcrypt hash of the admin password.
func NewService(repo SessionRepository, passwordHash string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		repo:         repo,
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// LOGIN
func (s *Service) Login(ctx context.Context, password string) (*Session, error) {
	if password == "" {
		return nil, ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	now := s.now()
	session := &Session{
		Token:     uuid.New().String(),
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate reports the live session for token. A missing token, an
// expired or unknown session and a repository failure all come back as
// ErrUnauthenticated.
func (s *Service) Validate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.repo.FindValid(ctx, token, s.now())
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Warn().Err(err).Msg("session lookup failed")
		}
		return nil, ErrUnauthenticated
	}
	return session, nil
}

// Logout deletes the session record. Failures are logged only.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		log.Warn().Err(err).Msg("session delete failed")
	}
}

// SweepExpired removes sessions whose expiry has passed.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}
