package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// ShipmentUsecase defines the lifecycle operations for shipments.
type ShipmentUsecase interface {
	GetAllShipments(ctx context.Context) ([]*entity.Shipment, error)
	CreateShipment(ctx context.Context, data *entity.Shipment) (*entity.Shipment, error)
	UpdateShipment(ctx context.Context, data *entity.Shipment) (*entity.Shipment, error)
	DeleteShipment(ctx context.Context, id uint) error
}
