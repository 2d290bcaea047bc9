package repository

import (
	"context"

	"gorm.io/gorm"
)

// HealthRepository probes store connectivity.
type HealthRepository interface {
	Ping(ctx context.Context) error
}

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository builds a GORM-backed connectivity probe.
func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Ping(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT 1").Error
}
