// Package repository defines the interfaces for the persistence layer.
//
// Every entity gets the same gateway contract: FindByID, GetAll, Create,
// Update, Delete. Implementations raise the domain error catalogue
// (not-found, duplicate-identifier, database-execute) and services let
// those pass through unchanged.
package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// VehicleTypeRepository defines the interface for vehicle type database operations.
type VehicleTypeRepository interface {
	// FindByID retrieves a vehicle type together with the vehicles that
	// reference it, so the deletion guard can inspect the collection.
	FindByID(ctx context.Context, id uint) (*entity.VehicleType, error)

	// GetAll retrieves every vehicle type in storage-native order.
	GetAll(ctx context.Context) ([]*entity.VehicleType, error)

	// Create persists a new vehicle type. An explicit identifier that
	// already exists yields a duplicate-identifier error.
	Create(ctx context.Context, vehicleType *entity.VehicleType) (*entity.VehicleType, error)

	// Update replaces every field of the stored row identified by the
	// entity's identifier.
	Update(ctx context.Context, vehicleType *entity.VehicleType) (*entity.VehicleType, error)

	// Delete removes the row, failing with not-found when nothing matched.
	Delete(ctx context.Context, id uint) error
}
