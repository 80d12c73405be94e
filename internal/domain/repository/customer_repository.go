package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// CustomerRepository defines the interface for customer database operations.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)
	GetAll(ctx context.Context) ([]*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id uint) error
}
