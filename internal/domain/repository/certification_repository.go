package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// CertificationRepository defines the interface for certification database operations.
type CertificationRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Certification, error)
	GetAll(ctx context.Context) ([]*entity.Certification, error)
	Create(ctx context.Context, certification *entity.Certification) (*entity.Certification, error)
	Update(ctx context.Context, certification *entity.Certification) (*entity.Certification, error)
	Delete(ctx context.Context, id uint) error
}
