package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/errors"
	"freightdesk/internal/usecase"
)

// repairRecordService is the one service with a cross-entity side effect:
// it keeps Vehicle.NumberOfRepairs in step with record creation/deletion.
// The counter is an audit counter maintained best-effort; the record write
// and the counter write are two separate statements with no transaction,
// so a failure between them (or concurrent mutation) can leave the counter
// off by one. Update deliberately leaves the counter alone even when the
// vehicle reference changes.
type repairRecordService struct {
	repo        repository.RepairRecordRepository
	vehicleRepo repository.VehicleRepository
	validate    *validation.Validator
}

// NewRepairRecordService creates the repair record domain service.
func NewRepairRecordService(
	repo repository.RepairRecordRepository,
	vehicleRepo repository.VehicleRepository,
	validate *validation.Validator,
) usecase.RepairRecordUsecase {
	return &repairRecordService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		validate:    validate,
	}
}

func (s *repairRecordService) GetAllRepairRecords(ctx context.Context) ([]*entity.RepairRecord, error) {
	return s.repo.GetAll(ctx)
}

func (s *repairRecordService) CreateRepairRecord(ctx context.Context, data *entity.RepairRecord) (*entity.RepairRecord, error) {
	record := &entity.RepairRecord{
		RepairRecordID: data.RepairRecordID,
		Vehicle:        data.Vehicle,
		Mechanic:       data.Mechanic,
		EstimatedTime:  data.EstimatedTime,
		ActualCostTime: data.ActualCostTime,
	}

	if err := s.validate.Struct(record); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if created.Vehicle != nil {
		if err := s.adjustVehicleRepairs(ctx, created.Vehicle.VehicleID, 1); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *repairRecordService) UpdateRepairRecord(ctx context.Context, data *entity.RepairRecord) (*entity.RepairRecord, error) {
	if data.RepairRecordID == 0 {
		return nil, domainerrors.NewMissingIDError("RepairRecordID")
	}

	record, err := s.repo.FindByID(ctx, data.RepairRecordID)
	if err != nil {
		return nil, err
	}

	record.Vehicle = data.Vehicle
	record.Mechanic = data.Mechanic
	record.EstimatedTime = data.EstimatedTime
	record.ActualCostTime = data.ActualCostTime

	if err := s.validate.Struct(record); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, record)
}

func (s *repairRecordService) DeleteRepairRecord(ctx context.Context, id uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if record.Vehicle != nil {
		if err := s.adjustVehicleRepairs(ctx, record.Vehicle.VehicleID, -1); err != nil {
			return err
		}
	}

	return s.repo.Delete(ctx, id)
}

// adjustVehicleRepairs applies a counter delta to the referenced vehicle.
// A stale reference (vehicle no longer exists) is skipped silently.
func (s *repairRecordService) adjustVehicleRepairs(ctx context.Context, vehicleID uint, delta int) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrVehicleNotFound) {
			return nil
		}

		return err
	}

	vehicle.NumberOfRepairs += delta

	_, err = s.vehicleRepo.Update(ctx, vehicle)

	return err
}
