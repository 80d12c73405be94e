package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// TripDriverRepository defines the interface for trip driver database operations.
type TripDriverRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.TripDriver, error)
	GetAll(ctx context.Context) ([]*entity.TripDriver, error)
	Create(ctx context.Context, assignment *entity.TripDriver) (*entity.TripDriver, error)
	Update(ctx context.Context, assignment *entity.TripDriver) (*entity.TripDriver, error)
	Delete(ctx context.Context, id uint) error
}
