package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// RepairRecordUsecase defines the lifecycle operations for repair records,
// including the vehicle repair-counter side effect.
type RepairRecordUsecase interface {
	GetAllRepairRecords(ctx context.Context) ([]*entity.RepairRecord, error)

	// CreateRepairRecord persists the record and then, when it references
	// a vehicle, increments that vehicle's NumberOfRepairs by one. The two
	// steps are not atomic.
	CreateRepairRecord(ctx context.Context, data *entity.RepairRecord) (*entity.RepairRecord, error)

	// UpdateRepairRecord fully replaces the record. It does NOT adjust any
	// vehicle counter, even when the vehicle reference changes.
	UpdateRepairRecord(ctx context.Context, data *entity.RepairRecord) (*entity.RepairRecord, error)

	// DeleteRepairRecord decrements the referenced vehicle's counter (when
	// the reference still resolves) and then deletes the record.
	DeleteRepairRecord(ctx context.Context, id uint) error
}
