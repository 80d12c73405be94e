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

// certificationRepository implements the repository.CertificationRepository interface.
type certificationRepository struct {
	db *gorm.DB
}

// NewCertificationRepository is the constructor for certificationRepository.
func NewCertificationRepository(db *gorm.DB) repository.CertificationRepository {
	return &certificationRepository{db: db}
}

// FindByID retrieves a certification by its ID.
func (repo *certificationRepository) FindByID(ctx context.Context, id uint) (*entity.Certification, error) {
	var data model.CertificationModel
	err := repo.db.WithContext(ctx).First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCertificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find certification by ID")
	}

	return toCertificationDomain(&data), nil
}

// GetAll retrieves every certification.
func (repo *certificationRepository) GetAll(ctx context.Context) ([]*entity.Certification, error) {
	var rows []model.CertificationModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch certifications")
	}

	certifications := make([]*entity.Certification, 0, len(rows))
	for i := range rows {
		certifications = append(certifications, toCertificationDomain(&rows[i]))
	}

	return certifications, nil
}

// Create persists a new certification.
func (repo *certificationRepository) Create(ctx context.Context, certification *entity.Certification) (*entity.Certification, error) {
	data := fromCertificationDomain(certification)

	if data.CertificationID != 0 {
		var count int64
		err := repo.db.WithContext(ctx).Model(&model.CertificationModel{}).
			Where(&model.CertificationModel{CertificationID: data.CertificationID}).
			Count(&count).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check certification ID")
		}
		if count > 0 {
			return nil, domainerrors.NewDuplicateIDError("CertificationID")
		}
	}

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDuplicateIDError("CertificationID")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create certification")
	}

	return toCertificationDomain(data), nil
}

// Update replaces the stored row with the given entity state.
func (repo *certificationRepository) Update(ctx context.Context, certification *entity.Certification) (*entity.Certification, error) {
	data := fromCertificationDomain(certification)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update certification")
	}

	return toCertificationDomain(data), nil
}

// Delete removes a certification by its ID.
func (repo *certificationRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CertificationModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete certification")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCertificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCertificationDomain converts a GORM CertificationModel to a domain Certification entity.
func toCertificationDomain(data *model.CertificationModel) *entity.Certification {
	if data == nil {
		return nil
	}

	certification := &entity.Certification{
		CertificationID: data.CertificationID,
	}

	if data.Employee != nil {
		certification.Employee = toEmployeeDomain(data.Employee)
	} else if data.EmployeeID != nil {
		certification.Employee = &entity.Employee{EmployeeID: *data.EmployeeID}
	}

	if data.VehicleType != nil {
		certification.VehicleType = toVehicleTypeDomain(data.VehicleType)
	} else if data.VehicleTypeID != nil {
		certification.VehicleType = &entity.VehicleType{VehicleTypeID: *data.VehicleTypeID}
	}

	return certification
}

// fromCertificationDomain converts a domain Certification entity to a GORM CertificationModel.
func fromCertificationDomain(data *entity.Certification) *model.CertificationModel {
	if data == nil {
		return nil
	}

	certificationM := &model.CertificationModel{
		CertificationID: data.CertificationID,
	}

	if data.Employee != nil && data.Employee.EmployeeID != 0 {
		employeeID := data.Employee.EmployeeID
		certificationM.EmployeeID = &employeeID
	}

	if data.VehicleType != nil && data.VehicleType.VehicleTypeID != 0 {
		vehicleTypeID := data.VehicleType.VehicleTypeID
		certificationM.VehicleTypeID = &vehicleTypeID
	}

	return certificationM
}
