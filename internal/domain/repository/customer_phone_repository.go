package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// CustomerPhoneRepository defines the interface for customer phone database operations.
type CustomerPhoneRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.CustomerPhone, error)
	GetAll(ctx context.Context) ([]*entity.CustomerPhone, error)
	Create(ctx context.Context, phone *entity.CustomerPhone) (*entity.CustomerPhone, error)
	Update(ctx context.Context, phone *entity.CustomerPhone) (*entity.CustomerPhone, error)
	Delete(ctx context.Context, id uint) error
}
