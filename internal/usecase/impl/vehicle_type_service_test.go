package impl

import (
	"context"
	"testing"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/validation"
	mockRepo "freightdesk/internal/mocks/repository"
	"freightdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// vehicleTypeServiceFixtures holds all test dependencies for vehicle type service tests.
type vehicleTypeServiceFixtures struct {
	service usecase.VehicleTypeUsecase
	repo    *mockRepo.MockVehicleTypeRepository
}

func createTestVehicleTypeService(t *testing.T) vehicleTypeServiceFixtures {
	repo := mockRepo.NewMockVehicleTypeRepository(t)
	service := NewVehicleTypeService(repo, validation.New())

	return vehicleTypeServiceFixtures{
		service: service,
		repo:    repo,
	}
}

func TestVehicleTypeService_Create_Success(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()
	created := &entity.VehicleType{VehicleTypeID: 4, VehicleTypeName: "Motorcycle"}

	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VehicleType")).
		Return(created, nil)

	result, err := fx.service.CreateVehicleType(ctx, &entity.VehicleType{VehicleTypeName: "Motorcycle"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), result.VehicleTypeID)
	assert.Equal(t, "Motorcycle", result.VehicleTypeName)
}

func TestVehicleTypeService_Create_ValidationFailed(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	result, err := fx.service.CreateVehicleType(context.Background(), &entity.VehicleType{})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Validation failed: VehicleTypeName should not be empty", appErr.Message())
}

// The collection field never participates in validation, so client input
// carrying vehicles does not trip the required checks.
func TestVehicleTypeService_Create_IgnoresVehiclesInput(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(vt *entity.VehicleType) bool {
			return vt.Vehicles == nil
		})).
		Return(&entity.VehicleType{VehicleTypeID: 1, VehicleTypeName: "Cargo Planes"}, nil)

	_, err := fx.service.CreateVehicleType(ctx, &entity.VehicleType{
		VehicleTypeName: "Cargo Planes",
		Vehicles:        []*entity.Vehicle{{VehicleID: 9}},
	})
	require.NoError(t, err)
}

func TestVehicleTypeService_Update_MissingID(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	result, err := fx.service.UpdateVehicleType(context.Background(), &entity.VehicleType{VehicleTypeName: "Renamed"})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "VehicleTypeID is required for update", appErr.Message())
}

func TestVehicleTypeService_Update_NotFound(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, domainerrors.ErrVehicleTypeNotFound)

	_, err := fx.service.UpdateVehicleType(ctx, &entity.VehicleType{VehicleTypeID: 99, VehicleTypeName: "Renamed"})
	assert.ErrorIs(t, err, domainerrors.ErrVehicleTypeNotFound)
}

func TestVehicleTypeService_Update_ReplacesName(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()
	existing := &entity.VehicleType{VehicleTypeID: 2, VehicleTypeName: "In-city trucks"}

	fx.repo.EXPECT().
		FindByID(ctx, uint(2)).
		Return(existing, nil)

	fx.repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(vt *entity.VehicleType) bool {
			return vt.VehicleTypeID == 2 && vt.VehicleTypeName == "City trucks"
		})).
		Return(&entity.VehicleType{VehicleTypeID: 2, VehicleTypeName: "City trucks"}, nil)

	result, err := fx.service.UpdateVehicleType(ctx, &entity.VehicleType{VehicleTypeID: 2, VehicleTypeName: "City trucks"})
	require.NoError(t, err)
	assert.Equal(t, "City trucks", result.VehicleTypeName)
}

func TestVehicleTypeService_Delete_Success(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.VehicleType{VehicleTypeID: 3, VehicleTypeName: "long haul trucks"}, nil)

	fx.repo.EXPECT().
		Delete(ctx, uint(3)).
		Return(nil)

	err := fx.service.DeleteVehicleType(ctx, 3)
	assert.NoError(t, err)
}

// A type still referenced by vehicles must survive the delete attempt.
func TestVehicleTypeService_Delete_GuardedWhileVehiclesAttached(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(1)).
		Return(&entity.VehicleType{
			VehicleTypeID:   1,
			VehicleTypeName: "Cargo Planes",
			Vehicles:        []*entity.Vehicle{{VehicleID: 1, Brand: "Harris, Tran and Roberson"}},
		}, nil)

	err := fx.service.DeleteVehicleType(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleTypeInUse)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Cannot delete VehicleType with associated Vehicles", appErr.Message())
}

func TestVehicleTypeService_Delete_NotFound(t *testing.T) {
	fx := createTestVehicleTypeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(nil, domainerrors.ErrVehicleTypeNotFound)

	err := fx.service.DeleteVehicleType(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleTypeNotFound)
}
