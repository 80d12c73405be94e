package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// CustomerUsecase defines the lifecycle operations for customers.
type CustomerUsecase interface {
	GetAllCustomers(ctx context.Context) ([]*entity.Customer, error)
	CreateCustomer(ctx context.Context, data *entity.Customer) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, data *entity.Customer) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}
