package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type certificationService struct {
	repo     repository.CertificationRepository
	validate *validation.Validator
}

// NewCertificationService creates the certification domain service.
func NewCertificationService(repo repository.CertificationRepository, validate *validation.Validator) usecase.CertificationUsecase {
	return &certificationService{
		repo:     repo,
		validate: validate,
	}
}

func (s *certificationService) GetAllCertifications(ctx context.Context) ([]*entity.Certification, error) {
	return s.repo.GetAll(ctx)
}

func (s *certificationService) CreateCertification(ctx context.Context, data *entity.Certification) (*entity.Certification, error) {
	certification := &entity.Certification{
		CertificationID: data.CertificationID,
		Employee:        data.Employee,
		VehicleType:     data.VehicleType,
	}

	if err := s.validate.Struct(certification); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, certification)
}

func (s *certificationService) UpdateCertification(ctx context.Context, data *entity.Certification) (*entity.Certification, error) {
	if data.CertificationID == 0 {
		return nil, domainerrors.NewMissingIDError("CertificationID")
	}

	certification, err := s.repo.FindByID(ctx, data.CertificationID)
	if err != nil {
		return nil, err
	}

	certification.Employee = data.Employee
	certification.VehicleType = data.VehicleType

	if err := s.validate.Struct(certification); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, certification)
}

func (s *certificationService) DeleteCertification(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
