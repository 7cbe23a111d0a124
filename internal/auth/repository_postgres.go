package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s *Session) error {
	query := `
		INSERT INTO admin_sessions (session_token, expires_at)
		VALUES ($1, $2)
		RETURNING created_at
	`
	return r.db.QueryRow(ctx, query, s.Token, s.ExpiresAt).Scan(&s.CreatedAt)
}

func (r *PostgresSessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*Session, error) {
	query := `
		SELECT session_token, expires_at, created_at
		FROM admin_sessions
		WHERE session_token = $1
		  AND expires_at > $2
	`

	s := &Session{}
	err := r.db.QueryRow(ctx, query, token, now).Scan(&s.Token, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM admin_sessions
		WHERE session_token = $1
	`, token)
	return err
}

// --------------------------------------------------
// Sweeper
// --------------------------------------------------

func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM admin_sessions
		WHERE expires_at <= $1
	`, now)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
