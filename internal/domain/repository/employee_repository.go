package repository

import (
	"context"

	"freightdesk/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee database operations.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Employee, error)
	GetAll(ctx context.Context) ([]*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	Delete(ctx context.Context, id uint) error
}
