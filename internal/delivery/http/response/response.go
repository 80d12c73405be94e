// Package response shapes every HTTP reply onto the wire contract.
//
// Success replies are the bare entity JSON; failures are always
// {"error": "<message>"} with the status carried by the domain error.
package response

import (
	"net/http"

	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform failure payload.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes an error payload with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// AppError maps a domain error onto the wire contract. Errors outside
// the domain catalogue become a generic 500.
func AppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.Message())
	}

	return Error(c, http.StatusInternalServerError, "Internal server error")
}

// BindingError reports an unreadable request body.
func BindingError(c echo.Context) error {
	return Error(c, http.StatusBadRequest, "Invalid request payload")
}
