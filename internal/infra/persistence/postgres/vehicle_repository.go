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

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// FindByID retrieves a vehicle by its ID.
func (repo *vehicleRepository) FindByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var data model.VehicleModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&data), nil
}

// GetAll retrieves every vehicle.
func (repo *vehicleRepository) GetAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var rows []model.VehicleModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(rows))
	for i := range rows {
		vehicles = append(vehicles, toVehicleDomain(&rows[i]))
	}

	return vehicles, nil
}

// Create persists a new vehicle.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	data := fromVehicleDomain(vehicle)

	if data.VehicleID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.VehicleModel{}).
			Where(&model.VehicleModel{VehicleID: data.VehicleID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check vehicle ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("VehicleID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("VehicleID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	return toVehicleDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	data := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update vehicle")
	}

	return toVehicleDomain(data), nil
}

// Delete removes a vehicle by its ID.
func (repo *vehicleRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.VehicleModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vehicle")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrVehicleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
// An unloaded vehicle type reference becomes an identifier-only stub.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	vehicle := &entity.Vehicle{
		VehicleID:       data.VehicleID,
		Brand:           data.Brand,
		Load:            data.Load,
		Capacity:        data.Capacity,
		Year:            data.Year,
		NumberOfRepairs: data.NumberOfRepairs,
	}

	if data.VehicleType != nil {
		vehicle.VehicleType = toVehicleTypeDomain(data.VehicleType)
	} else if data.VehicleTypeID != nil {
		vehicle.VehicleType = &entity.VehicleType{VehicleTypeID: *data.VehicleTypeID}
	}

	return vehicle
}

// fromVehicleDomain converts a domain Vehicle entity to a GORM VehicleModel.
// Only the foreign key of the vehicle type reference is written.
func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	vehicleM := &model.VehicleModel{
		VehicleID:       data.VehicleID,
		Brand:           data.Brand,
		Load:            data.Load,
		Capacity:        data.Capacity,
		Year:            data.Year,
		NumberOfRepairs: data.NumberOfRepairs,
	}

	if data.VehicleType != nil && data.VehicleType.VehicleTypeID != 0 {
		vehicleTypeID := data.VehicleType.VehicleTypeID
		vehicleM.VehicleTypeID = &vehicleTypeID
	}

	return vehicleM
}
