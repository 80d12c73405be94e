// Package impl contains the domain service implementations.
//
// Every service follows the same shape: GetAll delegates straight to the
// repository; Create assembles a fresh entity from the partial input
// (absent strings default to "", absent numbers to zero, absent references
// stay nil), validates and persists; Update requires the identifier,
// fetches the stored row and fully replaces every mutable field — omitted
// fields are wiped, this is deliberately not a patch; Delete delegates and
// lets repository errors pass through unchanged.
package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type vehicleTypeService struct {
	repo     repository.VehicleTypeRepository
	validate *validation.Validator
}

// NewVehicleTypeService creates the vehicle type domain service.
func NewVehicleTypeService(repo repository.VehicleTypeRepository, validate *validation.Validator) usecase.VehicleTypeUsecase {
	return &vehicleTypeService{
		repo:     repo,
		validate: validate,
	}
}

func (s *vehicleTypeService) GetAllVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error) {
	return s.repo.GetAll(ctx)
}

func (s *vehicleTypeService) CreateVehicleType(ctx context.Context, data *entity.VehicleType) (*entity.VehicleType, error) {
	vehicleType := &entity.VehicleType{
		VehicleTypeID:   data.VehicleTypeID,
		VehicleTypeName: data.VehicleTypeName,
	}

	if err := s.validate.Struct(vehicleType); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, vehicleType)
}

func (s *vehicleTypeService) UpdateVehicleType(ctx context.Context, data *entity.VehicleType) (*entity.VehicleType, error) {
	if data.VehicleTypeID == 0 {
		return nil, domainerrors.NewMissingIDError("VehicleTypeID")
	}

	vehicleType, err := s.repo.FindByID(ctx, data.VehicleTypeID)
	if err != nil {
		return nil, err
	}

	vehicleType.VehicleTypeName = data.VehicleTypeName

	if err := s.validate.Struct(vehicleType); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, vehicleType)
}

// DeleteVehicleType refuses to delete a type that vehicles still reference.
func (s *vehicleTypeService) DeleteVehicleType(ctx context.Context, id uint) error {
	vehicleType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if len(vehicleType.Vehicles) > 0 {
		return domainerrors.ErrVehicleTypeInUse
	}

	return s.repo.Delete(ctx, id)
}
