package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type tripService struct {
	repo     repository.TripRepository
	validate *validation.Validator
}

// NewTripService creates the trip domain service.
func NewTripService(repo repository.TripRepository, validate *validation.Validator) usecase.TripUsecase {
	return &tripService{
		repo:     repo,
		validate: validate,
	}
}

func (s *tripService) GetAllTrips(ctx context.Context) ([]*entity.Trip, error) {
	return s.repo.GetAll(ctx)
}

func (s *tripService) CreateTrip(ctx context.Context, data *entity.Trip) (*entity.Trip, error) {
	trip := &entity.Trip{
		TripID:    data.TripID,
		Vehicle:   data.Vehicle,
		Shipment:  data.Shipment,
		FromPlace: data.FromPlace,
		ToPlace:   data.ToPlace,
	}

	if err := s.validate.Struct(trip); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, trip)
}

func (s *tripService) UpdateTrip(ctx context.Context, data *entity.Trip) (*entity.Trip, error) {
	if data.TripID == 0 {
		return nil, domainerrors.NewMissingIDError("TripID")
	}

	trip, err := s.repo.FindByID(ctx, data.TripID)
	if err != nil {
		return nil, err
	}

	trip.Vehicle = data.Vehicle
	trip.Shipment = data.Shipment
	trip.FromPlace = data.FromPlace
	trip.ToPlace = data.ToPlace

	if err := s.validate.Struct(trip); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, trip)
}

func (s *tripService) DeleteTrip(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
