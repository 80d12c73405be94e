package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// VehicleUsecase defines the lifecycle operations for vehicles.
type VehicleUsecase interface {
	GetAllVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	CreateVehicle(ctx context.Context, data *entity.Vehicle) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, data *entity.Vehicle) (*entity.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error
}
