package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// DriverRepository defines the interface for driver database operations.
type DriverRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Driver, error)
	GetAll(ctx context.Context) ([]*entity.Driver, error)
	Create(ctx context.Context, driver *entity.Driver) (*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) (*entity.Driver, error)
	Delete(ctx context.Context, id uint) error
}
