package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type tripDriverService struct {
	repo     repository.TripDriverRepository
	validate *validation.Validator
}

// NewTripDriverService creates the trip driver assignment domain service.
func NewTripDriverService(repo repository.TripDriverRepository, validate *validation.Validator) usecase.TripDriverUsecase {
	return &tripDriverService{
		repo:     repo,
		validate: validate,
	}
}

func (s *tripDriverService) GetAllTripDrivers(ctx context.Context) ([]*entity.TripDriver, error) {
	return s.repo.GetAll(ctx)
}

func (s *tripDriverService) CreateTripDriver(ctx context.Context, data *entity.TripDriver) (*entity.TripDriver, error) {
	assignment := &entity.TripDriver{
		TripDriverID: data.TripDriverID,
		Trip:         data.Trip,
		Driver:       data.Driver,
	}

	if err := s.validate.Struct(assignment); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, assignment)
}

func (s *tripDriverService) UpdateTripDriver(ctx context.Context, data *entity.TripDriver) (*entity.TripDriver, error) {
	if data.TripDriverID == 0 {
		return nil, domainerrors.NewMissingIDError("TripDriverID")
	}

	assignment, err := s.repo.FindByID(ctx, data.TripDriverID)
	if err != nil {
		return nil, err
	}

	assignment.Trip = data.Trip
	assignment.Driver = data.Driver

	if err := s.validate.Struct(assignment); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, assignment)
}

func (s *tripDriverService) DeleteTripDriver(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
