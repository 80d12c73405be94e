package postgres

import (
	"context"
	"testing"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleTypeRepository_CreateAssignsID(t *testing.T) {
	repo := NewVehicleTypeRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.VehicleType{VehicleTypeName: "Cargo Planes"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.VehicleTypeID)
	assert.Equal(t, "Cargo Planes", created.VehicleTypeName)
}

func TestVehicleTypeRepository_CreateExplicitIDConflict(t *testing.T) {
	repo := NewVehicleTypeRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.VehicleType{VehicleTypeID: 7, VehicleTypeName: "Cargo Planes"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entity.VehicleType{VehicleTypeID: 7, VehicleTypeName: "In-city trucks"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "VehicleTypeID already exists", appErr.Message())
}

func TestVehicleTypeRepository_FindByIDNotFound(t *testing.T) {
	repo := NewVehicleTypeRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleTypeNotFound)
}

// FindByID must load the attached vehicles so the deletion guard can see them.
func TestVehicleTypeRepository_FindByIDPreloadsVehicles(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleTypeRepository(db)
	vehicleRepo := NewVehicleRepository(db)
	ctx := context.Background()

	vehicleType, err := repo.Create(ctx, &entity.VehicleType{VehicleTypeName: "long haul trucks"})
	require.NoError(t, err)

	_, err = vehicleRepo.Create(ctx, &entity.Vehicle{
		VehicleType: &entity.VehicleType{VehicleTypeID: vehicleType.VehicleTypeID},
		Brand:       "Young and Sons",
		Load:        9942,
		Capacity:    16923,
		Year:        2003,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, vehicleType.VehicleTypeID)
	require.NoError(t, err)
	require.Len(t, found.Vehicles, 1)
	assert.Equal(t, "Young and Sons", found.Vehicles[0].Brand)
}

func TestVehicleTypeRepository_UpdateReplacesRow(t *testing.T) {
	repo := NewVehicleTypeRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.VehicleType{VehicleTypeName: "In-city trucks"})
	require.NoError(t, err)

	created.VehicleTypeName = "City trucks"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "City trucks", updated.VehicleTypeName)

	found, err := repo.FindByID(ctx, created.VehicleTypeID)
	require.NoError(t, err)
	assert.Equal(t, "City trucks", found.VehicleTypeName)
}

func TestVehicleTypeRepository_DeleteMissingRow(t *testing.T) {
	repo := NewVehicleTypeRepository(newTestDB(t))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleTypeNotFound)
}

func TestVehicleTypeRepository_DeleteRemovesRow(t *testing.T) {
	repo := NewVehicleTypeRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.VehicleType{VehicleTypeName: "Cargo Planes"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.VehicleTypeID))

	_, err = repo.FindByID(ctx, created.VehicleTypeID)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleTypeNotFound)
}
