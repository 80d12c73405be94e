package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// CertificationUsecase defines the lifecycle operations for certifications.
type CertificationUsecase interface {
	GetAllCertifications(ctx context.Context) ([]*entity.Certification, error)
	CreateCertification(ctx context.Context, data *entity.Certification) (*entity.Certification, error)
	UpdateCertification(ctx context.Context, data *entity.Certification) (*entity.Certification, error)
	DeleteCertification(ctx context.Context, id uint) error
}
