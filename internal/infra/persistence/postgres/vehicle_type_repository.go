// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// vehicleTypeRepository implements the repository.VehicleTypeRepository interface.
type vehicleTypeRepository struct {
	db *gorm.DB
}

// NewVehicleTypeRepository is the constructor for vehicleTypeRepository.
func NewVehicleTypeRepository(db *gorm.DB) repository.VehicleTypeRepository {
	return &vehicleTypeRepository{db: db}
}

// FindByID retrieves a vehicle type by its ID, with the vehicles that
// reference it preloaded for the deletion guard.
func (repo *vehicleTypeRepository) FindByID(ctx context.Context, id uint) (*entity.VehicleType, error) {
	var data model.VehicleTypeModel
	err := repo.db.WithContext(ctx).Preload("Vehicles").First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVehicleTypeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find vehicle type by ID")
	}

	return toVehicleTypeDomain(&data), nil
}

// GetAll retrieves every vehicle type.
func (repo *vehicleTypeRepository) GetAll(ctx context.Context) ([]*entity.VehicleType, error) {
	var rows []model.VehicleTypeModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch vehicle types")
	}

	vehicleTypes := make([]*entity.VehicleType, 0, len(rows))
	for i := range rows {
		vehicleTypes = append(vehicleTypes, toVehicleTypeDomain(&rows[i]))
	}

	return vehicleTypes, nil
}

// Create persists a new vehicle type.
func (repo *vehicleTypeRepository) Create(ctx context.Context, vehicleType *entity.VehicleType) (*entity.VehicleType, error) {
	data := fromVehicleTypeDomain(vehicleType)

	if data.VehicleTypeID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.VehicleTypeModel{}).
			Where(&model.VehicleTypeModel{VehicleTypeID: data.VehicleTypeID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check vehicle type ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("VehicleTypeID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("VehicleTypeID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle type")
	}

	return toVehicleTypeDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *vehicleTypeRepository) Update(ctx context.Context, vehicleType *entity.VehicleType) (*entity.VehicleType, error) {
	data := fromVehicleTypeDomain(vehicleType)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update vehicle type")
	}

	return toVehicleTypeDomain(data), nil
}

// Delete removes a vehicle type by its ID.
func (repo *vehicleTypeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.VehicleTypeModel{}, id)
	if result.Error != nil {
		// Backstop for the service-level guard, in case vehicles were
		// attached between the guard check and the delete.
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrVehicleTypeInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vehicle type")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrVehicleTypeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVehicleTypeDomain converts a GORM VehicleTypeModel to a domain VehicleType entity.
func toVehicleTypeDomain(data *model.VehicleTypeModel) *entity.VehicleType {
	if data == nil {
		return nil
	}

	vehicleType := &entity.VehicleType{
		VehicleTypeID:   data.VehicleTypeID,
		VehicleTypeName: data.VehicleTypeName,
	}

	if len(data.Vehicles) > 0 {
		vehicleType.Vehicles = make([]*entity.Vehicle, 0, len(data.Vehicles))
		for i := range data.Vehicles {
			vehicleType.Vehicles = append(vehicleType.Vehicles, toVehicleDomain(&data.Vehicles[i]))
		}
	}

	return vehicleType
}

// fromVehicleTypeDomain converts a domain VehicleType entity to a GORM VehicleTypeModel.
// Associations are never written through this mapper.
func fromVehicleTypeDomain(data *entity.VehicleType) *model.VehicleTypeModel {
	if data == nil {
		return nil
	}

	return &model.VehicleTypeModel{
		VehicleTypeID:   data.VehicleTypeID,
		VehicleTypeName: data.VehicleTypeName,
	}
}
