package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-cms/internal/domain"
)

// ReviewRepository defines persistence access for testimonials.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
	ListApproved(ctx context.Context) ([]*domain.Review, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Review, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a Postgres-backed implementation.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

const reviewColumns = `id, reviewer_name, avatar, rating, text, approved, featured, created_at, updated_at`

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (reviewer_name, avatar, rating, text, approved, featured)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		review.ReviewerName,
		review.Avatar,
		review.Rating,
		review.Text,
		review.Approved,
		review.Featured,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	const query = `
        UPDATE reviews SET reviewer_name=$1, avatar=$2, rating=$3, text=$4, approved=$5, featured=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		review.ReviewerName,
		review.Avatar,
		review.Rating,
		review.Text,
		review.Approved,
		review.Featured,
		review.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id=$1`
	return scanReview(r.pool.QueryRow(ctx, query, id))
}

func (r *reviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
}

func (r *reviewRepository) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE approved ORDER BY created_at DESC`)
}

func (r *reviewRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *reviewRepository) list(ctx context.Context, query string) ([]*domain.Review, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reviewRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count)
	return count, err
}

func (r *reviewRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE NOT approved`).Scan(&count)
	return count, err
}

func collectReviews(rows pgx.Rows) ([]*domain.Review, error) {
	var reviews []*domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var review domain.Review
	if err := row.Scan(
		&review.ID,
		&review.ReviewerName,
		&review.Avatar,
		&review.Rating,
		&review.Text,
		&review.Approved,
		&review.Featured,
		&review.CreatedAt,
		&review.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &review, nil
}
