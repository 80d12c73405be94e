package postgres

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// repairRecordRepository implements the repository.RepairRecordRepository interface.
type repairRecordRepository struct {
	db *gorm.DB
}

// NewRepairRecordRepository is the constructor for repairRecordRepository.
func NewRepairRecordRepository(db *gorm.DB) repository.RepairRecordRepository {
	return &repairRecordRepository{db: db}
}

// FindByID retrieves a repair record by its ID.
func (repo *repairRecordRepository) FindByID(ctx context.Context, id uint) (*entity.RepairRecord, error) {
	var data model.RepairRecordModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRepairRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find repair record by ID")
	}

	return toRepairRecordDomain(&data), nil
}

// GetAll retrieves every repair record.
func (repo *repairRecordRepository) GetAll(ctx context.Context) ([]*entity.RepairRecord, error) {
	var rows []model.RepairRecordModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch repair records")
	}

	repairRecords := make([]*entity.RepairRecord, 0, len(rows))
	for i := range rows {
		repairRecords = append(repairRecords, toRepairRecordDomain(&rows[i]))
	}

	return repairRecords, nil
}

// Create persists a new repair record.
func (repo *repairRecordRepository) Create(ctx context.Context, repairRecord *entity.RepairRecord) (*entity.RepairRecord, error) {
	data := fromRepairRecordDomain(repairRecord)

	if data.RepairRecordID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.RepairRecordModel{}).
			Where(&model.RepairRecordModel{RepairRecordID: data.RepairRecordID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check repair record ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("RepairRecordID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("RepairRecordID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create repair record")
	}

	return toRepairRecordDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *repairRecordRepository) Update(ctx context.Context, repairRecord *entity.RepairRecord) (*entity.RepairRecord, error) {
	data := fromRepairRecordDomain(repairRecord)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update repair record")
	}

	return toRepairRecordDomain(data), nil
}

// Delete removes a repair record by its ID.
func (repo *repairRecordRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.RepairRecordModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete repair record")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrRepairRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRepairRecordDomain converts a GORM RepairRecordModel to a domain RepairRecord entity.
func toRepairRecordDomain(data *model.RepairRecordModel) *entity.RepairRecord {
	if data == nil {
		return nil
	}

	repairRecord := &entity.RepairRecord{
		RepairRecordID: data.RepairRecordID,
		EstimatedTime:  data.EstimatedTime,
		ActualCostTime: data.ActualCostTime,
	}

	if data.Vehicle != nil {
		repairRecord.Vehicle = toVehicleDomain(data.Vehicle)
	} else if data.VehicleID != nil {
		repairRecord.Vehicle = &entity.Vehicle{VehicleID: *data.VehicleID}
	}

	if data.Mechanic != nil {
		repairRecord.Mechanic = toMechanicDomain(data.Mechanic)
	} else if data.MechanicID != nil {
		repairRecord.Mechanic = &entity.Mechanic{MechanicID: *data.MechanicID}
	}

	return repairRecord
}

// fromRepairRecordDomain converts a domain RepairRecord entity to a GORM RepairRecordModel.
func fromRepairRecordDomain(data *entity.RepairRecord) *model.RepairRecordModel {
	if data == nil {
		return nil
	}

	repairRecordM := &model.RepairRecordModel{
		RepairRecordID: data.RepairRecordID,
		EstimatedTime:  data.EstimatedTime,
		ActualCostTime: data.ActualCostTime,
	}

	if data.Vehicle != nil && data.Vehicle.VehicleID != 0 {
		vehicleID := data.Vehicle.VehicleID
		repairRecordM.VehicleID = &vehicleID
	}

	if data.Mechanic != nil && data.Mechanic.MechanicID != 0 {
		mechanicID := data.Mechanic.MechanicID
		repairRecordM.MechanicID = &mechanicID
	}

	return repairRecordM
}
