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

// shipmentRepository implements the repository.ShipmentRepository interface.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// FindByID retrieves a shipment by its ID.
func (repo *shipmentRepository) FindByID(ctx context.Context, id uint) (*entity.Shipment, error) {
	var data model.ShipmentModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrShipmentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shipment by ID")
	}

	return toShipmentDomain(&data), nil
}

// GetAll retrieves every shipment.
func (repo *shipmentRepository) GetAll(ctx context.Context) ([]*entity.Shipment, error) {
	var rows []model.ShipmentModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(rows))
	for i := range rows {
		shipments = append(shipments, toShipmentDomain(&rows[i]))
	}

	return shipments, nil
}

// Create persists a new shipment.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error) {
	data := fromShipmentDomain(shipment)

	if data.ShipmentID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.ShipmentModel{}).
			Where(&model.ShipmentModel{ShipmentID: data.ShipmentID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check shipment ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("ShipmentID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("ShipmentID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	return toShipmentDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error) {
	data := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update shipment")
	}

	return toShipmentDomain(data), nil
}

// Delete removes a shipment by its ID.
func (repo *shipmentRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShipmentModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipment")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrShipmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShipmentDomain converts a GORM ShipmentModel to a domain Shipment entity.
func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	shipment := &entity.Shipment{
		ShipmentID:       data.ShipmentID,
		Weight:           data.Weight,
		Value:            data.Value,
		OriginPlace:      data.OriginPlace,
		DestinationPlace: data.DestinationPlace,
	}

	if data.Customer != nil {
		shipment.Customer = toCustomerDomain(data.Customer)
	} else if data.CustomerID != nil {
		shipment.Customer = &entity.Customer{CustomerID: *data.CustomerID}
	}

	return shipment
}

// fromShipmentDomain converts a domain Shipment entity to a GORM ShipmentModel.
func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	shipmentM := &model.ShipmentModel{
		ShipmentID:       data.ShipmentID,
		Weight:           data.Weight,
		Value:            data.Value,
		OriginPlace:      data.OriginPlace,
		DestinationPlace: data.DestinationPlace,
	}

	if data.Customer != nil && data.Customer.CustomerID != 0 {
		customerID := data.Customer.CustomerID
		shipmentM.CustomerID = &customerID
	}

	return shipmentM
}
