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

// CustomerHandler holds dependencies for the /customers resource.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /customers.
func (h *CustomerHandler) GetAll(c echo.Context) error {
	customers, err := h.uc.GetAllCustomers(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch customers", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch customers")
	}

	return c.JSON(http.StatusOK, customers)
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var input entity.Customer
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateCustomer(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /customers. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *CustomerHandler) Update(c echo.Context) error {
	var input entity.Customer
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateCustomer(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /customers/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteCustomer(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
