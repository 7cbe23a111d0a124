package db

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestSchemaIsIdempotent(t *testing.T) {
	for _, step := range schema() {
		if !strings.Contains(step.sql, "IF NOT EXISTS") {
			t.Errorf("%s: statement is not idempotent", step.name)
		}
	}
}

func TestSchemaOrder(t *testing.T) {
	pos := map[string]int{}
	for i, step := range schema() {
		pos[step.name] = i
	}
	if pos["order_items"] < pos["orders"] || pos["order_items"] < pos["menu_items"] {
		t.Fatal("order_items must be created after the tables it references")
	}
}

// TestConnectPostgres tests the Postgres connection
func TestConnectPostgres(t *testing.T) {
	t.Run("missing DATABASE_URL", func(t *testing.T) {
		if _, err := ConnectPostgres(context.Background(), ""); err == nil {
			t.Fatal("expected error for empty DSN")
		}
	})

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		pool, err := ConnectPostgres(context.Background(), dsn)
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		defer pool.Close()
	})
}
