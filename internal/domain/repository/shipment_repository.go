package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// ShipmentRepository defines the interface for shipment database operations.
type ShipmentRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Shipment, error)
	GetAll(ctx context.Context) ([]*entity.Shipment, error)
	Create(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error)
	Update(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error)
	Delete(ctx context.Context, id uint) error
}
