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

type tripServiceFixtures struct {
	service usecase.TripUsecase
	repo    *mockRepo.MockTripRepository
}

func createTestTripService(t *testing.T) tripServiceFixtures {
	repo := mockRepo.NewMockTripRepository(t)
	service := NewTripService(repo, validation.New())

	return tripServiceFixtures{
		service: service,
		repo:    repo,
	}
}

func TestTripService_Create_RequiresReferences(t *testing.T) {
	fx := createTestTripService(t)

	_, err := fx.service.CreateTrip(context.Background(), &entity.Trip{FromPlace: "West James", ToPlace: "Michaelport"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Validation failed: Vehicle should not be empty; Shipment should not be empty", appErr.Message())
}

func TestTripService_Create_Success(t *testing.T) {
	fx := createTestTripService(t)

	ctx := context.Background()
	input := &entity.Trip{
		Vehicle:   &entity.Vehicle{VehicleID: 2},
		Shipment:  &entity.Shipment{ShipmentID: 3},
		FromPlace: "North Annachester",
		ToPlace:   "Harperhaven",
	}

	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(trip *entity.Trip) bool {
			return trip.Vehicle.VehicleID == 2 && trip.Shipment.ShipmentID == 3
		})).
		Return(&entity.Trip{
			TripID:    1,
			Vehicle:   &entity.Vehicle{VehicleID: 2},
			Shipment:  &entity.Shipment{ShipmentID: 3},
			FromPlace: "North Annachester",
			ToPlace:   "Harperhaven",
		}, nil)

	result, err := fx.service.CreateTrip(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TripID)
}

func TestTripService_Update_MissingID(t *testing.T) {
	fx := createTestTripService(t)

	_, err := fx.service.UpdateTrip(context.Background(), &entity.Trip{
		Vehicle:  &entity.Vehicle{VehicleID: 2},
		Shipment: &entity.Shipment{ShipmentID: 3},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TripID is required for update", appErr.Message())
}
