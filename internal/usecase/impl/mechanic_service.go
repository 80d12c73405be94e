package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type mechanicService struct {
	repo     repository.MechanicRepository
	validate *validation.Validator
}

// NewMechanicService creates the mechanic domain service.
func NewMechanicService(repo repository.MechanicRepository, validate *validation.Validator) usecase.MechanicUsecase {
	return &mechanicService{
		repo:     repo,
		validate: validate,
	}
}

func (s *mechanicService) GetAllMechanics(ctx context.Context) ([]*entity.Mechanic, error) {
	return s.repo.GetAll(ctx)
}

func (s *mechanicService) CreateMechanic(ctx context.Context, data *entity.Mechanic) (*entity.Mechanic, error) {
	mechanic := &entity.Mechanic{
		MechanicID:  data.MechanicID,
		Employee:    data.Employee,
		VehicleType: data.VehicleType,
	}

	if err := s.validate.Struct(mechanic); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, mechanic)
}

func (s *mechanicService) UpdateMechanic(ctx context.Context, data *entity.Mechanic) (*entity.Mechanic, error) {
	if data.MechanicID == 0 {
		return nil, domainerrors.NewMissingIDError("MechanicID")
	}

	mechanic, err := s.repo.FindByID(ctx, data.MechanicID)
	if err != nil {
		return nil, err
	}

	mechanic.Employee = data.Employee
	mechanic.VehicleType = data.VehicleType

	if err := s.validate.Struct(mechanic); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, mechanic)
}

func (s *mechanicService) DeleteMechanic(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
