package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type customerPhoneService struct {
	repo     repository.CustomerPhoneRepository
	validate *validation.Validator
}

// NewCustomerPhoneService creates the customer phone domain service.
func NewCustomerPhoneService(repo repository.CustomerPhoneRepository, validate *validation.Validator) usecase.CustomerPhoneUsecase {
	return &customerPhoneService{
		repo:     repo,
		validate: validate,
	}
}

func (s *customerPhoneService) GetAllCustomerPhones(ctx context.Context) ([]*entity.CustomerPhone, error) {
	return s.repo.GetAll(ctx)
}

func (s *customerPhoneService) CreateCustomerPhone(ctx context.Context, data *entity.CustomerPhone) (*entity.CustomerPhone, error) {
	phone := &entity.CustomerPhone{
		CustomerPhoneID: data.CustomerPhoneID,
		Customer:        data.Customer,
		PhoneNumber:     data.PhoneNumber,
	}

	if err := s.validate.Struct(phone); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, phone)
}

func (s *customerPhoneService) UpdateCustomerPhone(ctx context.Context, data *entity.CustomerPhone) (*entity.CustomerPhone, error) {
	if data.CustomerPhoneID == 0 {
		return nil, domainerrors.NewMissingIDError("CustomerPhoneID")
	}

	phone, err := s.repo.FindByID(ctx, data.CustomerPhoneID)
	if err != nil {
		return nil, err
	}

	phone.Customer = data.Customer
	phone.PhoneNumber = data.PhoneNumber

	if err := s.validate.Struct(phone); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, phone)
}

func (s *customerPhoneService) DeleteCustomerPhone(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
