package errors

import (
	"net/http"

	"freightdesk/internal/errors"
)

// AppError defines the interface for application-specific errors.
// The delivery layer is the only place that reads HTTPCode; services and
// repositories raise AppErrors and let them pass through unchanged.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Not-found errors, one per persisted entity. The message doubles as the
// DELETE error body, so the wording is part of the API contract.
var (
	ErrCertificationNotFound = NewBaseError(http.StatusNotFound, "CERTIFICATION_NOT_FOUND", "Certification not found")
	ErrCustomerNotFound      = NewBaseError(http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
	ErrCustomerPhoneNotFound = NewBaseError(http.StatusNotFound, "CUSTOMER_PHONE_NOT_FOUND", "CustomerPhone not found")
	ErrDriverNotFound        = NewBaseError(http.StatusNotFound, "DRIVER_NOT_FOUND", "Driver not found")
	ErrEmployeeNotFound      = NewBaseError(http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found")
	ErrMechanicNotFound      = NewBaseError(http.StatusNotFound, "MECHANIC_NOT_FOUND", "Mechanic not found")
	ErrRepairRecordNotFound  = NewBaseError(http.StatusNotFound, "REPAIR_RECORD_NOT_FOUND", "RepairRecord not found")
	ErrShipmentNotFound      = NewBaseError(http.StatusNotFound, "SHIPMENT_NOT_FOUND", "Shipment not found")
	ErrTripNotFound          = NewBaseError(http.StatusNotFound, "TRIP_NOT_FOUND", "Trip not found")
	ErrTripDriverNotFound    = NewBaseError(http.StatusNotFound, "TRIP_DRIVER_NOT_FOUND", "TripDriver not found")
	ErrVehicleNotFound       = NewBaseError(http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
	ErrVehicleTypeNotFound   = NewBaseError(http.StatusNotFound, "VEHICLE_TYPE_NOT_FOUND", "VehicleType not found")
)

// ErrVehicleTypeInUse guards vehicle type deletion while vehicles still
// reference the type. This is the one referential-integrity rule enforced
// at the service layer instead of the storage engine.
var ErrVehicleTypeInUse = NewBaseError(
	http.StatusBadRequest,
	"VEHICLE_TYPE_IN_USE",
	"Cannot delete VehicleType with associated Vehicles",
)

// NewValidationError reports one or more required-field violations.
// details carries every violation joined by "; ".
func NewValidationError(details string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed: "+details)
}

// NewMissingIDError reports an update request without the entity identifier.
func NewMissingIDError(idField string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "MISSING_IDENTIFIER", idField+" is required for update")
}

// NewDuplicateIDError reports a create with an identifier that already exists.
func NewDuplicateIDError(idField string) *BaseError {
	return NewBaseError(http.StatusConflict, "DUPLICATE_IDENTIFIER", idField+" already exists")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Unwrap exposes the underlying driver error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
