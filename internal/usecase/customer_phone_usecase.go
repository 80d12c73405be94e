package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// CustomerPhoneUsecase defines the lifecycle operations for customer phones.
type CustomerPhoneUsecase interface {
	GetAllCustomerPhones(ctx context.Context) ([]*entity.CustomerPhone, error)
	CreateCustomerPhone(ctx context.Context, data *entity.CustomerPhone) (*entity.CustomerPhone, error)
	UpdateCustomerPhone(ctx context.Context, data *entity.CustomerPhone) (*entity.CustomerPhone, error)
	DeleteCustomerPhone(ctx context.Context, id uint) error
}
