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

// tripDriverRepository implements the repository.TripDriverRepository interface.
type tripDriverRepository struct {
	db *gorm.DB
}

// NewTripDriverRepository is the constructor for tripDriverRepository.
func NewTripDriverRepository(db *gorm.DB) repository.TripDriverRepository {
	return &tripDriverRepository{db: db}
}

// FindByID retrieves a trip driver assignment by its ID.
func (repo *tripDriverRepository) FindByID(ctx context.Context, id uint) (*entity.TripDriver, error) {
	var data model.TripDriverModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrTripDriverNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find trip driver by ID")
	}

	return toTripDriverDomain(&data), nil
}

// GetAll retrieves every trip driver assignment.
func (repo *tripDriverRepository) GetAll(ctx context.Context) ([]*entity.TripDriver, error) {
	var rows []model.TripDriverModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch trip drivers")
	}

	tripDrivers := make([]*entity.TripDriver, 0, len(rows))
	for i := range rows {
		tripDrivers = append(tripDrivers, toTripDriverDomain(&rows[i]))
	}

	return tripDrivers, nil
}

// Create persists a new trip driver assignment.
func (repo *tripDriverRepository) Create(ctx context.Context, tripDriver *entity.TripDriver) (*entity.TripDriver, error) {
	data := fromTripDriverDomain(tripDriver)

	if data.TripDriverID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.TripDriverModel{}).
			Where(&model.TripDriverModel{TripDriverID: data.TripDriverID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check trip driver ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("TripDriverID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("TripDriverID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create trip driver")
	}

	return toTripDriverDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *tripDriverRepository) Update(ctx context.Context, tripDriver *entity.TripDriver) (*entity.TripDriver, error) {
	data := fromTripDriverDomain(tripDriver)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update trip driver")
	}

	return toTripDriverDomain(data), nil
}

// Delete removes a trip driver assignment by its ID.
func (repo *tripDriverRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.TripDriverModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete trip driver")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrTripDriverNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTripDriverDomain converts a GORM TripDriverModel to a domain TripDriver entity.
func toTripDriverDomain(data *model.TripDriverModel) *entity.TripDriver {
	if data == nil {
		return nil
	}

	tripDriver := &entity.TripDriver{
		TripDriverID: data.TripDriverID,
	}

	if data.Trip != nil {
		tripDriver.Trip = toTripDomain(data.Trip)
	} else if data.TripID != nil {
		tripDriver.Trip = &entity.Trip{TripID: *data.TripID}
	}

	if data.Driver != nil {
		tripDriver.Driver = toDriverDomain(data.Driver)
	} else if data.DriverID != nil {
		tripDriver.Driver = &entity.Driver{DriverID: *data.DriverID}
	}

	return tripDriver
}

// fromTripDriverDomain converts a domain TripDriver entity to a GORM TripDriverModel.
func fromTripDriverDomain(data *entity.TripDriver) *model.TripDriverModel {
	if data == nil {
		return nil
	}

	tripDriverM := &model.TripDriverModel{
		TripDriverID: data.TripDriverID,
	}

	if data.Trip != nil && data.Trip.TripID != 0 {
		tripID := data.Trip.TripID
		tripDriverM.TripID = &tripID
	}

	if data.Driver != nil && data.Driver.DriverID != 0 {
		driverID := data.Driver.DriverID
		tripDriverM.DriverID = &driverID
	}

	return tripDriverM
}
