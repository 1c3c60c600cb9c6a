package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-cms/internal/domain"
)

// MenuItemRepository defines persistence access for cafe menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type menuItemRepository struct {
	pool *pgxpool.Pool
}

// NewMenuItemRepository returns a Postgres-backed implementation.
func NewMenuItemRepository(pool *pgxpool.Pool) MenuItemRepository {
	return &menuItemRepository{pool: pool}
}

const menuItemColumns = `id, name, price, description, category, image_url, available, display_order, created_at, updated_at`

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (name, price, description, category, image_url, available, display_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Price,
		item.Description,
		item.Category,
		item.ImageURL,
		item.Available,
		item.DisplayOrder,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        UPDATE menu_items SET name=$1, price=$2, description=$3, category=$4, image_url=$5,
            available=$6, display_order=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		item.Name,
		item.Price,
		item.Description,
		item.Category,
		item.ImageURL,
		item.Available,
		item.DisplayOrder,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id=$1`
	return scanMenuItem(r.pool.QueryRow(ctx, query, id))
}

func (r *menuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return r.list(ctx, `SELECT `+menuItemColumns+` FROM menu_items ORDER BY display_order, name`)
}

func (r *menuItemRepository) ListAvailable(ctx context.Context) ([]*domain.MenuItem, error) {
	return r.list(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE available ORDER BY display_order, name`)
}

func (r *menuItemRepository) list(ctx context.Context, query string) ([]*domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuItemRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	return count, err
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Description,
		&item.Category,
		&item.ImageURL,
		&item.Available,
		&item.DisplayOrder,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
