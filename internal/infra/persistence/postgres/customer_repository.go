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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a customer by its ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var data model.CustomerModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&data), nil
}

// GetAll retrieves every customer.
func (repo *customerRepository) GetAll(ctx context.Context) ([]*entity.Customer, error) {
	var rows []model.CustomerModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch customers")
	}

	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, toCustomerDomain(&rows[i]))
	}

	return customers, nil
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	data := fromCustomerDomain(customer)

	if data.CustomerID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
			Where(&model.CustomerModel{CustomerID: data.CustomerID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check customer ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("CustomerID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("CustomerID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	return toCustomerDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	data := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}

	return toCustomerDomain(data), nil
}

// Delete removes a customer by its ID.
func (repo *customerRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerAddress: data.CustomerAddress,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerAddress: data.CustomerAddress,
	}
}
