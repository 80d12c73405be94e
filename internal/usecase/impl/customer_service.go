package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type customerService struct {
	repo     repository.CustomerRepository
	validate *validation.Validator
}

// NewCustomerService creates the customer domain service.
func NewCustomerService(repo repository.CustomerRepository, validate *validation.Validator) usecase.CustomerUsecase {
	return &customerService{
		repo:     repo,
		validate: validate,
	}
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *customerService) CreateCustomer(ctx context.Context, data *entity.Customer) (*entity.Customer, error) {
	customer := &entity.Customer{
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerAddress: data.CustomerAddress,
	}

	if err := s.validate.Struct(customer); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, data *entity.Customer) (*entity.Customer, error) {
	if data.CustomerID == 0 {
		return nil, domainerrors.NewMissingIDError("CustomerID")
	}

	customer, err := s.repo.FindByID(ctx, data.CustomerID)
	if err != nil {
		return nil, err
	}

	customer.CustomerName = data.CustomerName
	customer.CustomerAddress = data.CustomerAddress

	if err := s.validate.Struct(customer); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
