package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-cms/internal/domain"
)

// TrainingRepository defines persistence access for trainings.
type TrainingRepository interface {
	Create(ctx context.Context, tr *domain.Training) error
	Update(ctx context.Context, tr *domain.Training) error
	GetByID(ctx context.Context, id string) (*domain.Training, error)
	List(ctx context.Context) ([]*domain.Training, error)
	ListFeatured(ctx context.Context) ([]*domain.Training, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type trainingRepository struct {
	pool *pgxpool.Pool
}

// NewTrainingRepository returns a Postgres-backed implementation.
func NewTrainingRepository(pool *pgxpool.Pool) TrainingRepository {
	return &trainingRepository{pool: pool}
}

const trainingColumns = `id, title, description, image_url, duration, level, format,
        career_prospect, learning_topics, instructor, price, discount, featured, sort_order,
        created_at, updated_at`

func (r *trainingRepository) Create(ctx context.Context, tr *domain.Training) error {
	const query = `
        INSERT INTO trainings (title, description, image_url, duration, level, format,
            career_prospect, learning_topics, instructor, price, discount, featured, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at`

	instructor, err := json.Marshal(tr.Instructor)
	if err != nil {
		return err
	}

	return r.pool.QueryRow(ctx, query,
		tr.Title,
		tr.Description,
		tr.ImageURL,
		tr.Duration,
		tr.Level,
		tr.Format,
		tr.CareerProspect,
		tr.LearningTopics,
		instructor,
		tr.Price,
		tr.Discount,
		tr.Featured,
		tr.Order,
	).Scan(&tr.ID, &tr.CreatedAt, &tr.UpdatedAt)
}

func (r *trainingRepository) Update(ctx context.Context, tr *domain.Training) error {
	const query = `
        UPDATE trainings SET title=$1, description=$2, image_url=$3, duration=$4, level=$5,
            format=$6, career_prospect=$7, learning_topics=$8, instructor=$9, price=$10,
            discount=$11, featured=$12, sort_order=$13, updated_at=NOW()
        WHERE id=$14`

	instructor, err := json.Marshal(tr.Instructor)
	if err != nil {
		return err
	}

	cmd, err := r.pool.Exec(ctx, query,
		tr.Title,
		tr.Description,
		tr.ImageURL,
		tr.Duration,
		tr.Level,
		tr.Format,
		tr.CareerProspect,
		tr.LearningTopics,
		instructor,
		tr.Price,
		tr.Discount,
		tr.Featured,
		tr.Order,
		tr.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainingRepository) GetByID(ctx context.Context, id string) (*domain.Training, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE id=$1`
	return scanTraining(r.pool.QueryRow(ctx, query, id))
}

func (r *trainingRepository) List(ctx context.Context) ([]*domain.Training, error) {
	return r.list(ctx, `SELECT `+trainingColumns+` FROM trainings ORDER BY sort_order`)
}

func (r *trainingRepository) ListFeatured(ctx context.Context) ([]*domain.Training, error) {
	return r.list(ctx, `SELECT `+trainingColumns+` FROM trainings WHERE featured ORDER BY sort_order`)
}

func (r *trainingRepository) list(ctx context.Context, query string) ([]*domain.Training, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []*domain.Training
	for rows.Next() {
		tr, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, tr)
	}
	return trainings, rows.Err()
}

func (r *trainingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM trainings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM trainings`).Scan(&count)
	return count, err
}

func scanTraining(row pgx.Row) (*domain.Training, error) {
	var (
		tr         domain.Training
		instructor []byte
	)
	if err := row.Scan(
		&tr.ID,
		&tr.Title,
		&tr.Description,
		&tr.ImageURL,
		&tr.Duration,
		&tr.Level,
		&tr.Format,
		&tr.CareerProspect,
		&tr.LearningTopics,
		&instructor,
		&tr.Price,
		&tr.Discount,
		&tr.Featured,
		&tr.Order,
		&tr.CreatedAt,
		&tr.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(instructor) > 0 {
		if err := json.Unmarshal(instructor, &tr.Instructor); err != nil {
			return nil, err
		}
	}
	return &tr, nil
}
