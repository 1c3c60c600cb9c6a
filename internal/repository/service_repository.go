package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-cms/internal/domain"
)

// ServiceRepository defines persistence access for site services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	Update(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	ListFeatured(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository returns a Postgres-backed implementation.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	const query = `
        INSERT INTO services (title, description, icon, image_url, featured, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		svc.Title,
		svc.Description,
		svc.Icon,
		svc.ImageURL,
		svc.Featured,
		svc.Order,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	const query = `
        UPDATE services SET title=$1, description=$2, icon=$3, image_url=$4, featured=$5, sort_order=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		svc.Title,
		svc.Description,
		svc.Icon,
		svc.ImageURL,
		svc.Featured,
		svc.Order,
		svc.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	const query = `
        SELECT id, title, description, icon, image_url, featured, sort_order, created_at, updated_at
        FROM services WHERE id=$1`

	return scanService(r.pool.QueryRow(ctx, query, id))
}

func (r *serviceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, `
        SELECT id, title, description, icon, image_url, featured, sort_order, created_at, updated_at
        FROM services ORDER BY sort_order`)
}

func (r *serviceRepository) ListFeatured(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, `
        SELECT id, title, description, icon, image_url, featured, sort_order, created_at, updated_at
        FROM services WHERE featured ORDER BY sort_order`)
}

func (r *serviceRepository) list(ctx context.Context, query string) ([]*domain.Service, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	return count, err
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	if err := row.Scan(
		&svc.ID,
		&svc.Title,
		&svc.Description,
		&svc.Icon,
		&svc.ImageURL,
		&svc.Featured,
		&svc.Order,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &svc, nil
}
