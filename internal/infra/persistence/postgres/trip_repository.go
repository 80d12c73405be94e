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

// tripRepository implements the repository.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// FindByID retrieves a trip by its ID.
func (repo *tripRepository) FindByID(ctx context.Context, id uint) (*entity.Trip, error) {
	var data model.TripModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find trip by ID")
	}

	return toTripDomain(&data), nil
}

// GetAll retrieves every trip.
func (repo *tripRepository) GetAll(ctx context.Context) ([]*entity.Trip, error) {
	var rows []model.TripModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch trips")
	}

	trips := make([]*entity.Trip, 0, len(rows))
	for i := range rows {
		trips = append(trips, toTripDomain(&rows[i]))
	}

	return trips, nil
}

// Create persists a new trip.
func (repo *tripRepository) Create(ctx context.Context, trip *entity.Trip) (*entity.Trip, error) {
	data := fromTripDomain(trip)

	if data.TripID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.TripModel{}).
			Where(&model.TripModel{TripID: data.TripID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check trip ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("TripID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("TripID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create trip")
	}

	return toTripDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *tripRepository) Update(ctx context.Context, trip *entity.Trip) (*entity.Trip, error) {
	data := fromTripDomain(trip)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update trip")
	}

	return toTripDomain(data), nil
}

// Delete removes a trip by its ID.
func (repo *tripRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.TripModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete trip")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrTripNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTripDomain converts a GORM TripModel to a domain Trip entity.
func toTripDomain(data *model.TripModel) *entity.Trip {
	if data == nil {
		return nil
	}

	trip := &entity.Trip{
		TripID:    data.TripID,
		FromPlace: data.FromPlace,
		ToPlace:   data.ToPlace,
	}

	if data.Vehicle != nil {
		trip.Vehicle = toVehicleDomain(data.Vehicle)
	} else if data.VehicleID != nil {
		trip.Vehicle = &entity.Vehicle{VehicleID: *data.VehicleID}
	}

	if data.Shipment != nil {
		trip.Shipment = toShipmentDomain(data.Shipment)
	} else if data.ShipmentID != nil {
		trip.Shipment = &entity.Shipment{ShipmentID: *data.ShipmentID}
	}

	return trip
}

// fromTripDomain converts a domain Trip entity to a GORM TripModel.
func fromTripDomain(data *entity.Trip) *model.TripModel {
	if data == nil {
		return nil
	}

	tripM := &model.TripModel{
		TripID:    data.TripID,
		FromPlace: data.FromPlace,
		ToPlace:   data.ToPlace,
	}

	if data.Vehicle != nil && data.Vehicle.VehicleID != 0 {
		vehicleID := data.Vehicle.VehicleID
		tripM.VehicleID = &vehicleID
	}

	if data.Shipment != nil && data.Shipment.ShipmentID != 0 {
		shipmentID := data.Shipment.ShipmentID
		tripM.ShipmentID = &shipmentID
	}

	return tripM
}
