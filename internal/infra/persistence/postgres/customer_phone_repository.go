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

// customerPhoneRepository implements the repository.CustomerPhoneRepository interface.
type customerPhoneRepository struct {
	db *gorm.DB
}

// NewCustomerPhoneRepository is the constructor for customerPhoneRepository.
func NewCustomerPhoneRepository(db *gorm.DB) repository.CustomerPhoneRepository {
	return &customerPhoneRepository{db: db}
}

// FindByID retrieves a customer phone by its ID.
func (repo *customerPhoneRepository) FindByID(ctx context.Context, id uint) (*entity.CustomerPhone, error) {
	var data model.CustomerPhoneModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerPhoneNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer phone by ID")
	}

	return toCustomerPhoneDomain(&data), nil
}

// GetAll retrieves every customer phone.
func (repo *customerPhoneRepository) GetAll(ctx context.Context) ([]*entity.CustomerPhone, error) {
	var rows []model.CustomerPhoneModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch customer phones")
	}

	customerPhones := make([]*entity.CustomerPhone, 0, len(rows))
	for i := range rows {
		customerPhones = append(customerPhones, toCustomerPhoneDomain(&rows[i]))
	}

	return customerPhones, nil
}

// Create persists a new customer phone.
func (repo *customerPhoneRepository) Create(ctx context.Context, customerPhone *entity.CustomerPhone) (*entity.CustomerPhone, error) {
	data := fromCustomerPhoneDomain(customerPhone)

	if data.CustomerPhoneID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.CustomerPhoneModel{}).
			Where(&model.CustomerPhoneModel{CustomerPhoneID: data.CustomerPhoneID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check customer phone ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("CustomerPhoneID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("CustomerPhoneID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create customer phone")
	}

	return toCustomerPhoneDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *customerPhoneRepository) Update(ctx context.Context, customerPhone *entity.CustomerPhone) (*entity.CustomerPhone, error) {
	data := fromCustomerPhoneDomain(customerPhone)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update customer phone")
	}

	return toCustomerPhoneDomain(data), nil
}

// Delete removes a customer phone by its ID.
func (repo *customerPhoneRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerPhoneModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer phone")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerPhoneNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerPhoneDomain converts a GORM CustomerPhoneModel to a domain CustomerPhone entity.
func toCustomerPhoneDomain(data *model.CustomerPhoneModel) *entity.CustomerPhone {
	if data == nil {
		return nil
	}

	customerPhone := &entity.CustomerPhone{
		CustomerPhoneID: data.CustomerPhoneID,
		PhoneNumber:     data.PhoneNumber,
	}

	if data.Customer != nil {
		customerPhone.Customer = toCustomerDomain(data.Customer)
	} else if data.CustomerID != nil {
		customerPhone.Customer = &entity.Customer{CustomerID: *data.CustomerID}
	}

	return customerPhone
}

// fromCustomerPhoneDomain converts a domain CustomerPhone entity to a GORM CustomerPhoneModel.
func fromCustomerPhoneDomain(data *entity.CustomerPhone) *model.CustomerPhoneModel {
	if data == nil {
		return nil
	}

	customerPhoneM := &model.CustomerPhoneModel{
		CustomerPhoneID: data.CustomerPhoneID,
		PhoneNumber:     data.PhoneNumber,
	}

	if data.Customer != nil && data.Customer.CustomerID != 0 {
		customerID := data.Customer.CustomerID
		customerPhoneM.CustomerID = &customerID
	}

	return customerPhoneM
}
