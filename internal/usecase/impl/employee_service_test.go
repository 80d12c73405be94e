package impl

import (
	"context"
	"testing"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/domain/validation"
	mockRepo "freightdesk/internal/mocks/repository"
	"freightdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type employeeServiceFixtures struct {
	service usecase.EmployeeUsecase
	repo    *mockRepo.MockEmployeeRepository
}

func createTestEmployeeService(t *testing.T) employeeServiceFixtures {
	repo := mockRepo.NewMockEmployeeRepository(t)
	service := NewEmployeeService(repo, validation.New())

	return employeeServiceFixtures{
		service: service,
		repo:    repo,
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	created := &entity.Employee{EmployeeID: 11, FirstName: "Colleen", Surname: "Jones", Seniority: 2}

	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Employee")).
		Return(created, nil)

	result, err := fx.service.CreateEmployee(ctx, &entity.Employee{FirstName: "Colleen", Surname: "Jones", Seniority: 2})
	require.NoError(t, err)
	assert.Equal(t, uint(11), result.EmployeeID)
}

func TestEmployeeService_Create_ReportsEveryViolation(t *testing.T) {
	fx := createTestEmployeeService(t)

	_, err := fx.service.CreateEmployee(context.Background(), &entity.Employee{Seniority: 3})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Validation failed: FirstName should not be empty; Surname should not be empty", appErr.Message())
}

// PUT is a full replace: fields omitted from the input are wiped, and
// wiping a required field fails validation.
func TestEmployeeService_Update_FullReplaceWipesOmittedFields(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Employee{EmployeeID: 4, FirstName: "Kayla", Surname: "Roberts", Seniority: 4}, nil)

	_, err := fx.service.UpdateEmployee(ctx, &entity.Employee{EmployeeID: 4, FirstName: "Kayla"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Validation failed: Surname should not be empty", appErr.Message())
}

func TestEmployeeService_Update_Success(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Employee{EmployeeID: 4, FirstName: "Kayla", Surname: "Roberts", Seniority: 4}, nil)

	fx.repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(e *entity.Employee) bool {
			return e.EmployeeID == 4 && e.Seniority == 5
		})).
		Return(&entity.Employee{EmployeeID: 4, FirstName: "Kayla", Surname: "Roberts", Seniority: 5}, nil)

	result, err := fx.service.UpdateEmployee(ctx, &entity.Employee{EmployeeID: 4, FirstName: "Kayla", Surname: "Roberts", Seniority: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Seniority)
}

func TestEmployeeService_Delete_Delegates(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		Delete(ctx, uint(9)).
		Return(domainerrors.ErrEmployeeNotFound)

	err := fx.service.DeleteEmployee(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}
