package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type driverService struct {
	repo     repository.DriverRepository
	validate *validation.Validator
}

// NewDriverService creates the driver domain service.
func NewDriverService(repo repository.DriverRepository, validate *validation.Validator) usecase.DriverUsecase {
	return &driverService{
		repo:     repo,
		validate: validate,
	}
}

func (s *driverService) GetAllDrivers(ctx context.Context) ([]*entity.Driver, error) {
	return s.repo.GetAll(ctx)
}

func (s *driverService) CreateDriver(ctx context.Context, data *entity.Driver) (*entity.Driver, error) {
	driver := &entity.Driver{
		DriverID:   data.DriverID,
		DriverName: data.DriverName,
	}

	if err := s.validate.Struct(driver); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, driver)
}

func (s *driverService) UpdateDriver(ctx context.Context, data *entity.Driver) (*entity.Driver, error) {
	if data.DriverID == 0 {
		return nil, domainerrors.NewMissingIDError("DriverID")
	}

	driver, err := s.repo.FindByID(ctx, data.DriverID)
	if err != nil {
		return nil, err
	}

	driver.DriverName = data.DriverName

	if err := s.validate.Struct(driver); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, driver)
}

func (s *driverService) DeleteDriver(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
