// Package usecase declares the application-facing interfaces of the domain
// services. Handlers depend on these, never on the implementations.
package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// VehicleTypeUsecase defines the lifecycle operations for vehicle types.
type VehicleTypeUsecase interface {
	// GetAllVehicleTypes returns every vehicle type.
	GetAllVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error)

	// CreateVehicleType assembles a vehicle type from the partial input,
	// validates it and persists it.
	CreateVehicleType(ctx context.Context, data *entity.VehicleType) (*entity.VehicleType, error)

	// UpdateVehicleType fully replaces the stored vehicle type identified
	// by the input's VehicleTypeID.
	UpdateVehicleType(ctx context.Context, data *entity.VehicleType) (*entity.VehicleType, error)

	// DeleteVehicleType removes a vehicle type unless vehicles still
	// reference it.
	DeleteVehicleType(ctx context.Context, id uint) error
}
