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

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// FindByID retrieves an employee by its ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var data model.EmployeeModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrEmployeeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find employee by ID")
	}

	return toEmployeeDomain(&data), nil
}

// GetAll retrieves every employee.
func (repo *employeeRepository) GetAll(ctx context.Context) ([]*entity.Employee, error) {
	var rows []model.EmployeeModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch employees")
	}

	employees := make([]*entity.Employee, 0, len(rows))
	for i := range rows {
		employees = append(employees, toEmployeeDomain(&rows[i]))
	}

	return employees, nil
}

// Create persists a new employee.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	data := fromEmployeeDomain(employee)

	if data.EmployeeID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.EmployeeModel{}).
			Where(&model.EmployeeModel{EmployeeID: data.EmployeeID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check employee ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("EmployeeID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("EmployeeID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	return toEmployeeDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	data := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update employee")
	}

	return toEmployeeDomain(data), nil
}

// Delete removes an employee by its ID.
func (repo *employeeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.EmployeeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrEmployeeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		EmployeeID: data.EmployeeID,
		FirstName:  data.FirstName,
		Surname:    data.Surname,
		Seniority:  data.Seniority,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		EmployeeID: data.EmployeeID,
		FirstName:  data.FirstName,
		Surname:    data.Surname,
		Seniority:  data.Seniority,
	}
}
