package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// TripUsecase defines the lifecycle operations for trips.
type TripUsecase interface {
	GetAllTrips(ctx context.Context) ([]*entity.Trip, error)
	CreateTrip(ctx context.Context, data *entity.Trip) (*entity.Trip, error)
	UpdateTrip(ctx context.Context, data *entity.Trip) (*entity.Trip, error)
	DeleteTrip(ctx context.Context, id uint) error
}
