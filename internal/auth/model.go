package auth

import "time"

// Session is an admin login. It ends at ExpiresAt and is never extended.
type Session struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) ValidAt(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
