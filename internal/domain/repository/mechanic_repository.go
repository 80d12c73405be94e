package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// MechanicRepository defines the interface for mechanic database operations.
type MechanicRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Mechanic, error)
	GetAll(ctx context.Context) ([]*entity.Mechanic, error)
	Create(ctx context.Context, mechanic *entity.Mechanic) (*entity.Mechanic, error)
	Update(ctx context.Context, mechanic *entity.Mechanic) (*entity.Mechanic, error)
	Delete(ctx context.Context, id uint) error
}
