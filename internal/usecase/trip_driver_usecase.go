package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// TripDriverUsecase defines the lifecycle operations for trip driver assignments.
type TripDriverUsecase interface {
	GetAllTripDrivers(ctx context.Context) ([]*entity.TripDriver, error)
	CreateTripDriver(ctx context.Context, data *entity.TripDriver) (*entity.TripDriver, error)
	UpdateTripDriver(ctx context.Context, data *entity.TripDriver) (*entity.TripDriver, error)
	DeleteTripDriver(ctx context.Context, id uint) error
}
