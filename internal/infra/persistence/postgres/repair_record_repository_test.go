package postgres

import (
	"context"
	"testing"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairRecordRepository_ReferencesStoredAsStubs(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepairRecordRepository(db)
	vehicleRepo := NewVehicleRepository(db)
	ctx := context.Background()

	vehicle, err := vehicleRepo.Create(ctx, &entity.Vehicle{Brand: "Bell Inc", Load: 6531, Capacity: 32539, Year: 2023})
	require.NoError(t, err)

	created, err := repo.Create(ctx, &entity.RepairRecord{
		Vehicle:        &entity.Vehicle{VehicleID: vehicle.VehicleID},
		EstimatedTime:  13,
		ActualCostTime: 15,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.RepairRecordID)
	require.NoError(t, err)
	require.NotNil(t, found.Vehicle)
	assert.Equal(t, vehicle.VehicleID, found.Vehicle.VehicleID)
	assert.Nil(t, found.Mechanic)
}

func TestRepairRecordRepository_CreateWithoutReferences(t *testing.T) {
	repo := NewRepairRecordRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.RepairRecord{EstimatedTime: 8, ActualCostTime: 9})
	require.NoError(t, err)
	assert.Nil(t, created.Vehicle)
	assert.Nil(t, created.Mechanic)
}

func TestRepairRecordRepository_GetAll(t *testing.T) {
	repo := NewRepairRecordRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &entity.RepairRecord{EstimatedTime: float64(i), ActualCostTime: float64(i + 1)})
		require.NoError(t, err)
	}

	records, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRepairRecordRepository_DeleteNotFound(t *testing.T) {
	repo := NewRepairRecordRepository(newTestDB(t))

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, domainerrors.ErrRepairRecordNotFound)
}
