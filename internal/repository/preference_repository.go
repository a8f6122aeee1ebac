package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/user-service/internal/domain"
)

// PreferenceRepository defines persistence access for notification preferences.
type PreferenceRepository interface {
	Create(ctx context.Context, pref *domain.Preference) error
	GetByUserID(ctx context.Context, userID string) (*domain.Preference, error)
	Update(ctx context.Context, pref *domain.Preference) error
}

type preferenceRepository struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository returns a Postgres-backed implementation.
func NewPreferenceRepository(pool *pgxpool.Pool) PreferenceRepository {
	return &preferenceRepository{pool: pool}
}

func (r *preferenceRepository) Create(ctx context.Context, pref *domain.Preference) error {
	const query = `
        INSERT INTO preferences (user_id, email, push)
        VALUES ($1, $2, $3)
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		pref.UserID,
		pref.Email,
		pref.Push,
	).Scan(&pref.UpdatedAt)
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (*domain.Preference, error) {
	const query = `
        SELECT user_id, email, push, updated_at
        FROM preferences WHERE user_id=$1`

	var pref domain.Preference
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&pref.UserID,
		&pref.Email,
		&pref.Push,
		&pref.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Update(ctx context.Context, pref *domain.Preference) error {
	const query = `
        UPDATE preferences SET email=$1, push=$2, updated_at=NOW()
        WHERE user_id=$3`

	cmd, err := r.pool.Exec(ctx, query, pref.Email, pref.Push, pref.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
