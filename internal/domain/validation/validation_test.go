package validation

import (
	"testing"

	"freightdesk/internal/domain/entity"
	domainerrors "freightdesk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct_Valid(t *testing.T) {
	v := New()

	err := v.Struct(&entity.VehicleType{VehicleTypeName: "Cargo Planes"})
	assert.NoError(t, err)
}

func TestValidator_Struct_MissingRequiredString(t *testing.T) {
	v := New()

	err := v.Struct(&entity.VehicleType{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Validation failed: VehicleTypeName should not be empty", appErr.Message())
}

func TestValidator_Struct_AggregatesAllViolations(t *testing.T) {
	v := New()

	err := v.Struct(&entity.Employee{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Validation failed: FirstName should not be empty; Surname should not be empty", appErr.Message())
}

func TestValidator_Struct_MissingReferences(t *testing.T) {
	v := New()

	err := v.Struct(&entity.Certification{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Validation failed: Employee should not be empty; VehicleType should not be empty", appErr.Message())
}

// Reference stubs carry only an identifier; their inner required fields
// must not be validated.
func TestValidator_Struct_ReferenceStubNotDescended(t *testing.T) {
	v := New()

	err := v.Struct(&entity.Certification{
		Employee:    &entity.Employee{EmployeeID: 3},
		VehicleType: &entity.VehicleType{VehicleTypeID: 1},
	})
	assert.NoError(t, err)
}

func TestValidator_Struct_ShipmentRequiredSet(t *testing.T) {
	v := New()

	err := v.Struct(&entity.Shipment{Weight: 10, Value: 100})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t,
		"Validation failed: Customer should not be empty; OriginPlace should not be empty; DestinationPlace should not be empty",
		appErr.Message())
}

// Numeric fields are always considered present once defaulted to zero.
func TestValidator_Struct_ZeroNumbersAreValid(t *testing.T) {
	v := New()

	err := v.Struct(&entity.Vehicle{Brand: "Vasquez Ltd"})
	assert.NoError(t, err)
}
