package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type shipmentService struct {
	repo     repository.ShipmentRepository
	validate *validation.Validator
}

// NewShipmentService creates the shipment domain service.
func NewShipmentService(repo repository.ShipmentRepository, validate *validation.Validator) usecase.ShipmentUsecase {
	return &shipmentService{
		repo:     repo,
		validate: validate,
	}
}

func (s *shipmentService) GetAllShipments(ctx context.Context) ([]*entity.Shipment, error) {
	return s.repo.GetAll(ctx)
}

func (s *shipmentService) CreateShipment(ctx context.Context, data *entity.Shipment) (*entity.Shipment, error) {
	shipment := &entity.Shipment{
		ShipmentID:       data.ShipmentID,
		Customer:         data.Customer,
		Weight:           data.Weight,
		Value:            data.Value,
		OriginPlace:      data.OriginPlace,
		DestinationPlace: data.DestinationPlace,
	}

	if err := s.validate.Struct(shipment); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, shipment)
}

func (s *shipmentService) UpdateShipment(ctx context.Context, data *entity.Shipment) (*entity.Shipment, error) {
	if data.ShipmentID == 0 {
		return nil, domainerrors.NewMissingIDError("ShipmentID")
	}

	shipment, err := s.repo.FindByID(ctx, data.ShipmentID)
	if err != nil {
		return nil, err
	}

	shipment.Customer = data.Customer
	shipment.Weight = data.Weight
	shipment.Value = data.Value
	shipment.OriginPlace = data.OriginPlace
	shipment.DestinationPlace = data.DestinationPlace

	if err := s.validate.Struct(shipment); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, shipment)
}

func (s *shipmentService) DeleteShipment(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
