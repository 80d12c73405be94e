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

// driverRepository implements the repository.DriverRepository interface.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository is the constructor for driverRepository.
func NewDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

// FindByID retrieves a driver by its ID.
func (repo *driverRepository) FindByID(ctx context.Context, id uint) (*entity.Driver, error) {
	var data model.DriverModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find driver by ID")
	}

	return toDriverDomain(&data), nil
}

// GetAll retrieves every driver.
func (repo *driverRepository) GetAll(ctx context.Context) ([]*entity.Driver, error) {
	var rows []model.DriverModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch drivers")
	}

	drivers := make([]*entity.Driver, 0, len(rows))
	for i := range rows {
		drivers = append(drivers, toDriverDomain(&rows[i]))
	}

	return drivers, nil
}

// Create persists a new driver.
func (repo *driverRepository) Create(ctx context.Context, driver *entity.Driver) (*entity.Driver, error) {
	data := fromDriverDomain(driver)

	if data.DriverID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.DriverModel{}).
			Where(&model.DriverModel{DriverID: data.DriverID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check driver ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("DriverID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("DriverID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create driver")
	}

	return toDriverDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *driverRepository) Update(ctx context.Context, driver *entity.Driver) (*entity.Driver, error) {
	data := fromDriverDomain(driver)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update driver")
	}

	return toDriverDomain(data), nil
}

// Delete removes a driver by its ID.
func (repo *driverRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.DriverModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete driver")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDriverNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDriverDomain converts a GORM DriverModel to a domain Driver entity.
func toDriverDomain(data *model.DriverModel) *entity.Driver {
	if data == nil {
		return nil
	}

	return &entity.Driver{
		DriverID:   data.DriverID,
		DriverName: data.DriverName,
	}
}

// fromDriverDomain converts a domain Driver entity to a GORM DriverModel.
func fromDriverDomain(data *entity.Driver) *model.DriverModel {
	if data == nil {
		return nil
	}

	return &model.DriverModel{
		DriverID:   data.DriverID,
		DriverName: data.DriverName,
	}
}
