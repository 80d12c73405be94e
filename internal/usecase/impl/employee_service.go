package impl

import (
	"context"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/repository"
	"freightdesk/internal/domain/validation"
	"freightdesk/internal/usecase"
)

type employeeService struct {
	repo     repository.EmployeeRepository
	validate *validation.Validator
}

// NewEmployeeService creates the employee domain service.
func NewEmployeeService(repo repository.EmployeeRepository, validate *validation.Validator) usecase.EmployeeUsecase {
	return &employeeService{
		repo:     repo,
		validate: validate,
	}
}

func (s *employeeService) GetAllEmployees(ctx context.Context) ([]*entity.Employee, error) {
	return s.repo.GetAll(ctx)
}

func (s *employeeService) CreateEmployee(ctx context.Context, data *entity.Employee) (*entity.Employee, error) {
	employee := &entity.Employee{
		EmployeeID: data.EmployeeID,
		FirstName:  data.FirstName,
		Surname:    data.Surname,
		Seniority:  data.Seniority,
	}

	if err := s.validate.Struct(employee); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, employee)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, data *entity.Employee) (*entity.Employee, error) {
	if data.EmployeeID == 0 {
		return nil, domainerrors.NewMissingIDError("EmployeeID")
	}

	employee, err := s.repo.FindByID(ctx, data.EmployeeID)
	if err != nil {
		return nil, err
	}

	employee.FirstName = data.FirstName
	employee.Surname = data.Surname
	employee.Seniority = data.Seniority

	if err := s.validate.Struct(employee); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, employee)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
