package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"freightdesk/internal/delivery/http/response"
	"freightdesk/internal/domain/entity"
	"freightdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EmployeeHandler holds dependencies for the /employees resource.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /employees.
func (h *EmployeeHandler) GetAll(c echo.Context) error {
	employees, err := h.uc.GetAllEmployees(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch employees", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch employees")
	}

	return c.JSON(http.StatusOK, employees)
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var input entity.Employee
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateEmployee(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /employees. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var input entity.Employee
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateEmployee(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /employees/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteEmployee(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
