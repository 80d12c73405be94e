package usecase

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// EmployeeUsecase defines the lifecycle operations for employees.
type EmployeeUsecase interface {
	GetAllEmployees(ctx context.Context) ([]*entity.Employee, error)
	CreateEmployee(ctx context.Context, data *entity.Employee) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, data *entity.Employee) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
}
