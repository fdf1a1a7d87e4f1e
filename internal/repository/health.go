package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-back/internal/apperrors"
)

type HealthRepository struct {
	db *pgxpool.Pool
}

func NewHealthRepository(db *pgxpool.Pool) *HealthRepository {
	return &HealthRepository{
		db: db,
	}
}

func (r *HealthRepository) IsOK() (bool, error) {
	return true, nil
}

// PingDB does a round-trip to the store so /health reflects real availability.
func (r *HealthRepository) PingDB(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}
