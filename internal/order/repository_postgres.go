package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CREATE
// --------------------------------------------------

func (r *PostgresRepository) CreateOrder(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (
			customer_name,
			customer_phone,
			order_type,
			special_instructions,
			total,
			status
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5::numeric, $6)
		RETURNING id::text, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		o.CustomerName,
		o.CustomerPhone,
		o.OrderType,
		o.SpecialInstructions,
		o.Total.String(),
		string(o.Status),
	).Scan(&o.ID, &o.CreatedAt)
}

// CreateItems inserts all lines in one batch.
func (r *PostgresRepository) CreateItems(ctx context.Context, orderID string, items []Item) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO order_items (
				order_id,
				menu_item_id,
				quantity,
				spice_level,
				item_price
			)
			VALUES ($1::uuid, $2, $3, $4, $5::numeric)
		`,
			orderID,
			it.MenuItemID,
			it.Quantity,
			it.SpiceLevel,
			it.ItemPrice.String(),
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// --------------------------------------------------
// LIST
// --------------------------------------------------

func (r *PostgresRepository) List(ctx context.Context, status Status) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id::text,
			customer_name,
			customer_phone,
			order_type,
			COALESCE(special_instructions, ''),
			total::text,
			status,
			created_at
		FROM orders
		WHERE $1::text = '' OR status = $1::text
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		orders []Order
		index  = map[string]int{}
		ids    []string
	)

	for rows.Next() {
		var (
			o     Order
			total string
			st    string
		)
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.OrderType,
			&o.SpecialInstructions,
			&total,
			&st,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}

		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("order %s total: %w", o.ID, err)
		}
		o.Status = Status(st)
		o.Items = []Item{}

		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []Order{}, nil
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT
			oi.id::text,
			oi.order_id::text,
			COALESCE(oi.menu_item_id, ''),
			COALESCE(m.name, ''),
			COALESCE(m.category, ''),
			oi.quantity,
			oi.spice_level,
			oi.item_price::text
		FROM order_items oi
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id::text = ANY($1)
		ORDER BY oi.id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			it    Item
			price string
		)
		if err := itemRows.Scan(
			&it.ID,
			&it.OrderID,
			&it.MenuItemID,
			&it.DishName,
			&it.DishCategory,
			&it.Quantity,
			&it.SpiceLevel,
			&price,
		); err != nil {
			return nil, err
		}

		if it.ItemPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("order item %s price: %w", it.ID, err)
		}

		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}

	return orders, itemRows.Err()
}

// --------------------------------------------------
// STATUS
// --------------------------------------------------

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2
		WHERE id::text = $1
	`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
