package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
)

// PostgresJobRepository implements JobRepository using PostgreSQL
type PostgresJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobRepository creates a new PostgresJobRepository
func NewPostgresJobRepository(pool *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{pool: pool}
}

const jobColumns = `id, provider_id, title, description, categories, location, price_rate, status, scheduled_at, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	job := &domain.Job{}
	err := row.Scan(
		&job.ID,
		&job.ProviderID,
		&job.Title,
		&job.Description,
		&job.Categories,
		&job.Location,
		&job.PriceRate,
		&job.Status,
		&job.ScheduledAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// Create creates a new job listing
func (r *PostgresJobRepository) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (id, provider_id, title, description, categories, location, price_rate, status, scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.ProviderID,
		job.Title,
		job.Description,
		job.Categories,
		job.Location,
		job.PriceRate,
		job.Status,
		job.ScheduledAt,
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

// ListByProvider retrieves a provider's listings, newest first
func (r *PostgresJobRepository) ListByProvider(ctx context.Context, providerID string) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE provider_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, providerID)
}

// ListOpen retrieves open listings, newest first
func (r *PostgresJobRepository) ListOpen(ctx context.Context) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'open' ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PostgresJobRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Job, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Delete removes a listing owned by providerID
func (r *PostgresJobRepository) Delete(ctx context.Context, id, providerID string) (bool, error) {
	query := `DELETE FROM jobs WHERE id = $1 AND provider_id = $2`
	cmd, err := r.pool.Exec(ctx, query, id, providerID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
