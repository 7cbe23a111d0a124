package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Info().Msg("connected to PostgreSQL")

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

type schemaStep struct {
	name string
	sql  string
}

func schema() []schemaStep {
	return []schemaStep{
		// -------------------------------
		// MENU ITEMS
		// -------------------------------
		{"menu_items", `
			CREATE TABLE IF NOT EXISTS menu_items (
				id TEXT PRIMARY KEY,
				position BIGSERIAL,
				name VARCHAR(255) NOT NULL,
				category VARCHAR(50) NOT NULL,
				price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
				quantity VARCHAR(100) NOT NULL,
				max_quantity VARCHAR(255) NULL,
				spice_level INT NOT NULL CHECK (spice_level BETWEEN 1 AND 5),
				ingredients TEXT NOT NULL DEFAULT '',
				description TEXT NULL,
				image VARCHAR(500) NULL,
				is_popular BOOLEAN NOT NULL DEFAULT FALSE,
				is_limited BOOLEAN NOT NULL DEFAULT FALSE,
				is_special BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`},

		// -------------------------------
		// ORDERS
		// -------------------------------
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				customer_name VARCHAR(100) NOT NULL,
				customer_phone VARCHAR(15) NOT NULL,
				order_type VARCHAR(20) NOT NULL DEFAULT 'takeaway',
				special_instructions VARCHAR(500) NULL,
				total NUMERIC(12,2) NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`},
		{"orders_created_at_idx", `
			CREATE INDEX IF NOT EXISTS orders_created_at_idx
			ON orders (created_at DESC)
		`},

		{"order_items", `
			CREATE TABLE IF NOT EXISTS order_items (
				id BIGSERIAL PRIMARY KEY,
				order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
				menu_item_id TEXT NULL REFERENCES menu_items(id) ON DELETE SET NULL,
				quantity INT NOT NULL CHECK (quantity >= 1),
				spice_level INT NOT NULL CHECK (spice_level BETWEEN 1 AND 5),
				item_price NUMERIC(12,2) NOT NULL
			)
		`},

		// -------------------------------
		// ADMIN SESSIONS
		// -------------------------------
		{"admin_sessions", `
			CREATE TABLE IF NOT EXISTS admin_sessions (
				session_token TEXT PRIMARY KEY,
				expires_at TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`},
	}
}

// initSchema creates the schema if it does not exist yet
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, step := range schema() {
		if _, err := db.Exec(ctx, step.sql); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	log.Info().Msg("schema initialized")
	return nil
}
