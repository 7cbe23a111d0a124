package menu

import (
	"context"
	"errors"
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

const dishColumns = `
	id,
	name,
	category,
	price::text,
	quantity,
	COALESCE(max_quantity, ''),
	spice_level,
	ingredients,
	COALESCE(description, ''),
	COALESCE(image, ''),
	is_popular,
	is_limited,
	is_special,
	created_at,
	updated_at
`

func scanDish(row pgx.Row) (*Dish, error) {
	var (
		d     Dish
		price string
	)

	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Category,
		&price,
		&d.Quantity,
		&d.MaxQuantity,
		&d.SpiceLevel,
		&d.Ingredients,
		&d.Description,
		&d.Image,
		&d.IsPopular,
		&d.IsLimited,
		&d.IsSpecial,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("dish %s price: %w", d.ID, err)
	}
	d.Price = p

	return &d, nil
}

// --------------------------------------------------
// LIST / GET
// --------------------------------------------------

func (r *PostgresRepository) List(ctx context.Context) ([]Dish, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+dishColumns+`
		FROM menu_items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}

	return dishes, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Dish, error) {
	d, err := scanDish(r.db.QueryRow(ctx, `
		SELECT `+dishColumns+`
		FROM menu_items
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	return n, err
}

// --------------------------------------------------
// WRITE
// --------------------------------------------------

func (r *PostgresRepository) Create(ctx context.Context, d *Dish) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			id,
			name,
			category,
			price,
			quantity,
			max_quantity,
			spice_level,
			ingredients,
			description,
			image,
			is_popular,
			is_limited,
			is_special
		)
		VALUES ($1, $2, $3, $4::numeric, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13)
		RETURNING created_at, updated_at
	`,
		d.ID,
		d.Name,
		d.Category,
		d.Price.String(),
		d.Quantity,
		d.MaxQuantity,
		d.SpiceLevel,
		d.Ingredients,
		d.Description,
		d.Image,
		d.IsPopular,
		d.IsLimited,
		d.IsSpecial,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *PostgresRepository) Update(ctx context.Context, d *Dish) error {
	err := r.db.QueryRow(ctx, `
		UPDATE menu_items
		SET name = $2,
		    category = $3,
		    price = $4::numeric,
		    quantity = $5,
		    max_quantity = NULLIF($6, ''),
		    spice_level = $7,
		    ingredients = $8,
		    description = NULLIF($9, ''),
		    image = NULLIF($10, ''),
		    is_popular = $11,
		    is_limited = $12,
		    is_special = $13,
		    updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`,
		d.ID,
		d.Name,
		d.Category,
		d.Price.String(),
		d.Quantity,
		d.MaxQuantity,
		d.SpiceLevel,
		d.Ingredients,
		d.Description,
		d.Image,
		d.IsPopular,
		d.IsLimited,
		d.IsSpecial,
	).Scan(&d.CreatedAt, &d.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrDishNotFound
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrDishNotFound
	}
	return nil
}

func (r *PostgresRepository) SetImage(ctx context.Context, id string, url string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET image = $2,
		    updated_at = now()
		WHERE id = $1
	`, id, url)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrDishNotFound
	}
	return nil
}
