package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// RepairRecordRepository defines the interface for repair record database operations.
type RepairRecordRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.RepairRecord, error)
	GetAll(ctx context.Context) ([]*entity.RepairRecord, error)
	Create(ctx context.Context, record *entity.RepairRecord) (*entity.RepairRecord, error)
	Update(ctx context.Context, record *entity.RepairRecord) (*entity.RepairRecord, error)
	Delete(ctx context.Context, id uint) error
}
