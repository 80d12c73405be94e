package impl

import (
	"context"
	"testing"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/validation"
	mockRepo "freightdesk/internal/mocks/repository"
	"freightdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// repairRecordServiceFixtures holds all test dependencies for repair record service tests.
type repairRecordServiceFixtures struct {
	service     usecase.RepairRecordUsecase
	repo        *mockRepo.MockRepairRecordRepository
	vehicleRepo *mockRepo.MockVehicleRepository
}

func createTestRepairRecordService(t *testing.T) repairRecordServiceFixtures {
	repo := mockRepo.NewMockRepairRecordRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	service := NewRepairRecordService(repo, vehicleRepo, validation.New())

	return repairRecordServiceFixtures{
		service:     service,
		repo:        repo,
		vehicleRepo: vehicleRepo,
	}
}

func TestRepairRecordService_Create_IncrementsVehicleCounter(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()
	input := &entity.RepairRecord{
		Vehicle:        &entity.Vehicle{VehicleID: 7},
		EstimatedTime:  13,
		ActualCostTime: 15,
	}
	created := &entity.RepairRecord{
		RepairRecordID: 11,
		Vehicle:        &entity.Vehicle{VehicleID: 7},
		EstimatedTime:  13,
		ActualCostTime: 15,
	}

	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RepairRecord")).
		Return(created, nil)

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, uint(7)).
		Return(&entity.Vehicle{VehicleID: 7, Brand: "Bell Inc", NumberOfRepairs: 2}, nil)

	fx.vehicleRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(v *entity.Vehicle) bool {
			return v.VehicleID == 7 && v.NumberOfRepairs == 3
		})).
		Return(&entity.Vehicle{VehicleID: 7, Brand: "Bell Inc", NumberOfRepairs: 3}, nil)

	result, err := fx.service.CreateRepairRecord(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(11), result.RepairRecordID)
}

func TestRepairRecordService_Create_NoVehicleNoCounterTouch(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()
	created := &entity.RepairRecord{RepairRecordID: 12, EstimatedTime: 8, ActualCostTime: 9}

	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RepairRecord")).
		Return(created, nil)

	result, err := fx.service.CreateRepairRecord(ctx, &entity.RepairRecord{EstimatedTime: 8, ActualCostTime: 9})
	require.NoError(t, err)
	assert.Equal(t, uint(12), result.RepairRecordID)
}

// The record insert and the counter write are separate statements; a
// counter failure after a successful insert surfaces to the caller.
func TestRepairRecordService_Create_CounterUpdateFailurePropagates(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()
	created := &entity.RepairRecord{
		RepairRecordID: 13,
		Vehicle:        &entity.Vehicle{VehicleID: 2},
		EstimatedTime:  11,
		ActualCostTime: 8,
	}
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to update vehicle")

	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RepairRecord")).
		Return(created, nil)

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, uint(2)).
		Return(&entity.Vehicle{VehicleID: 2, Brand: "Thompson, Koch and Rivera", NumberOfRepairs: 10}, nil)

	fx.vehicleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vehicle")).
		Return(nil, dbErr)

	_, err := fx.service.CreateRepairRecord(ctx, &entity.RepairRecord{
		Vehicle:        &entity.Vehicle{VehicleID: 2},
		EstimatedTime:  11,
		ActualCostTime: 8,
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestRepairRecordService_Delete_DecrementsVehicleCounter(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(5)).
		Return(&entity.RepairRecord{
			RepairRecordID: 5,
			Vehicle:        &entity.Vehicle{VehicleID: 6},
			EstimatedTime:  11,
			ActualCostTime: 12,
		}, nil)

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, uint(6)).
		Return(&entity.Vehicle{VehicleID: 6, Brand: "Landry PLC", NumberOfRepairs: 1}, nil)

	fx.vehicleRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(v *entity.Vehicle) bool {
			return v.VehicleID == 6 && v.NumberOfRepairs == 0
		})).
		Return(&entity.Vehicle{VehicleID: 6, Brand: "Landry PLC", NumberOfRepairs: 0}, nil)

	fx.repo.EXPECT().
		Delete(ctx, uint(5)).
		Return(nil)

	err := fx.service.DeleteRepairRecord(ctx, 5)
	assert.NoError(t, err)
}

// A stale vehicle reference skips the decrement instead of failing the delete.
func TestRepairRecordService_Delete_StaleVehicleSkipsDecrement(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(8)).
		Return(&entity.RepairRecord{
			RepairRecordID: 8,
			Vehicle:        &entity.Vehicle{VehicleID: 77},
			EstimatedTime:  5,
			ActualCostTime: 11,
		}, nil)

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, uint(77)).
		Return(nil, domainerrors.ErrVehicleNotFound)

	fx.repo.EXPECT().
		Delete(ctx, uint(8)).
		Return(nil)

	err := fx.service.DeleteRepairRecord(ctx, 8)
	assert.NoError(t, err)
}

func TestRepairRecordService_Delete_NotFound(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(404)).
		Return(nil, domainerrors.ErrRepairRecordNotFound)

	err := fx.service.DeleteRepairRecord(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrRepairRecordNotFound)
}

// Update never adjusts the counter, even when the vehicle reference changes.
func TestRepairRecordService_Update_DoesNotAdjustCounter(t *testing.T) {
	fx := createTestRepairRecordService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.RepairRecord{
			RepairRecordID: 3,
			Vehicle:        &entity.Vehicle{VehicleID: 5},
			EstimatedTime:  6,
			ActualCostTime: 7,
		}, nil)

	fx.repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(r *entity.RepairRecord) bool {
			return r.RepairRecordID == 3 && r.Vehicle != nil && r.Vehicle.VehicleID == 9
		})).
		Return(&entity.RepairRecord{
			RepairRecordID: 3,
			Vehicle:        &entity.Vehicle{VehicleID: 9},
			EstimatedTime:  6,
			ActualCostTime: 7,
		}, nil)

	result, err := fx.service.UpdateRepairRecord(ctx, &entity.RepairRecord{
		RepairRecordID: 3,
		Vehicle:        &entity.Vehicle{VehicleID: 9},
		EstimatedTime:  6,
		ActualCostTime: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), result.Vehicle.VehicleID)
}

func TestRepairRecordService_Update_MissingID(t *testing.T) {
	fx := createTestRepairRecordService(t)

	_, err := fx.service.UpdateRepairRecord(context.Background(), &entity.RepairRecord{EstimatedTime: 1})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RepairRecordID is required for update", appErr.Message())
}
