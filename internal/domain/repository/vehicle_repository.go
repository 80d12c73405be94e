package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle database operations.
type VehicleRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	GetAll(ctx context.Context) ([]*entity.Vehicle, error)
	Create(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	Delete(ctx context.Context, id uint) error
}
