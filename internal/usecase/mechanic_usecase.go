package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// MechanicUsecase defines the lifecycle operations for mechanics.
type MechanicUsecase interface {
	GetAllMechanics(ctx context.Context) ([]*entity.Mechanic, error)
	CreateMechanic(ctx context.Context, data *entity.Mechanic) (*entity.Mechanic, error)
	UpdateMechanic(ctx context.Context, data *entity.Mechanic) (*entity.Mechanic, error)
	DeleteMechanic(ctx context.Context, id uint) error
}
