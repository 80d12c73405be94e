package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// TripRepository defines the interface for trip database operations.
type TripRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Trip, error)
	GetAll(ctx context.Context) ([]*entity.Trip, error)
	Create(ctx context.Context, trip *entity.Trip) (*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) (*entity.Trip, error)
	Delete(ctx context.Context, id uint) error
}
