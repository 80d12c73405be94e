package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// DriverUsecase defines the lifecycle operations for drivers.
type DriverUsecase interface {
	GetAllDrivers(ctx context.Context) ([]*entity.Driver, error)
	CreateDriver(ctx context.Context, data *entity.Driver) (*entity.Driver, error)
	UpdateDriver(ctx context.Context, data *entity.Driver) (*entity.Driver, error)
	DeleteDriver(ctx context.Context, id uint) error
}
