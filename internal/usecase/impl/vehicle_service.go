package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type vehicleService struct {
	repo     repository.VehicleRepository
	validate *validation.Validator
}

// NewVehicleService creates the vehicle domain service.
func NewVehicleService(repo repository.VehicleRepository, validate *validation.Validator) usecase.VehicleUsecase {
	return &vehicleService{
		repo:     repo,
		validate: validate,
	}
}

func (s *vehicleService) GetAllVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return s.repo.GetAll(ctx)
}

func (s *vehicleService) CreateVehicle(ctx context.Context, data *entity.Vehicle) (*entity.Vehicle, error) {
	vehicle := &entity.Vehicle{
		VehicleID:       data.VehicleID,
		VehicleType:     data.VehicleType,
		Brand:           data.Brand,
		Load:            data.Load,
		Capacity:        data.Capacity,
		Year:            data.Year,
		NumberOfRepairs: data.NumberOfRepairs,
	}

	if err := s.validate.Struct(vehicle); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, vehicle)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, data *entity.Vehicle) (*entity.Vehicle, error) {
	if data.VehicleID == 0 {
		return nil, domainerrors.NewMissingIDError("VehicleID")
	}

	vehicle, err := s.repo.FindByID(ctx, data.VehicleID)
	if err != nil {
		return nil, err
	}

	vehicle.VehicleType = data.VehicleType
	vehicle.Brand = data.Brand
	vehicle.Load = data.Load
	vehicle.Capacity = data.Capacity
	vehicle.Year = data.Year
	vehicle.NumberOfRepairs = data.NumberOfRepairs

	if err := s.validate.Struct(vehicle); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
