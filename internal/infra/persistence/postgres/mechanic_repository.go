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

// mechanicRepository implements the repository.MechanicRepository interface.
type mechanicRepository struct {
	db *gorm.DB
}

// NewMechanicRepository is the constructor for mechanicRepository.
func NewMechanicRepository(db *gorm.DB) repository.MechanicRepository {
	return &mechanicRepository{db: db}
}

// FindByID retrieves a mechanic by its ID.
func (repo *mechanicRepository) FindByID(ctx context.Context, id uint) (*entity.Mechanic, error) {
	var data model.MechanicModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMechanicNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find mechanic by ID")
	}

	return toMechanicDomain(&data), nil
}

// GetAll retrieves every mechanic.
func (repo *mechanicRepository) GetAll(ctx context.Context) ([]*entity.Mechanic, error) {
	var rows []model.MechanicModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch mechanics")
	}

	mechanics := make([]*entity.Mechanic, 0, len(rows))
	for i := range rows {
		mechanics = append(mechanics, toMechanicDomain(&rows[i]))
	}

	return mechanics, nil
}

// Create persists a new mechanic.
func (repo *mechanicRepository) Create(ctx context.Context, mechanic *entity.Mechanic) (*entity.Mechanic, error) {
	data := fromMechanicDomain(mechanic)

	if data.MechanicID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.MechanicModel{}).
			Where(&model.MechanicModel{MechanicID: data.MechanicID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check mechanic ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("MechanicID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("MechanicID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create mechanic")
	}

	return toMechanicDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *mechanicRepository) Update(ctx context.Context, mechanic *entity.Mechanic) (*entity.Mechanic, error) {
	data := fromMechanicDomain(mechanic)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update mechanic")
	}

	return toMechanicDomain(data), nil
}

// Delete removes a mechanic by its ID.
func (repo *mechanicRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.MechanicModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete mechanic")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrMechanicNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMechanicDomain converts a GORM MechanicModel to a domain Mechanic entity.
func toMechanicDomain(data *model.MechanicModel) *entity.Mechanic {
	if data == nil {
		return nil
	}

	mechanic := &entity.Mechanic{
		MechanicID: data.MechanicID,
	}

	if data.Employee != nil {
		mechanic.Employee = toEmployeeDomain(data.Employee)
	} else if data.EmployeeID != nil {
		mechanic.Employee = &entity.Employee{EmployeeID: *data.EmployeeID}
	}

	if data.VehicleType != nil {
		mechanic.VehicleType = toVehicleTypeDomain(data.VehicleType)
	} else if data.VehicleTypeID != nil {
		mechanic.VehicleType = &entity.VehicleType{VehicleTypeID: *data.VehicleTypeID}
	}

	return mechanic
}

// fromMechanicDomain converts a domain Mechanic entity to a GORM MechanicModel.
func fromMechanicDomain(data *entity.Mechanic) *model.MechanicModel {
	if data == nil {
		return nil
	}

	mechanicM := &model.MechanicModel{
		MechanicID: data.MechanicID,
	}

	if data.Employee != nil && data.Employee.EmployeeID != 0 {
		employeeID := data.Employee.EmployeeID
		mechanicM.EmployeeID = &employeeID
	}

	if data.VehicleType != nil && data.VehicleType.VehicleTypeID != 0 {
		vehicleTypeID := data.VehicleType.VehicleTypeID
		mechanicM.VehicleTypeID = &vehicleTypeID
	}

	return mechanicM
}
