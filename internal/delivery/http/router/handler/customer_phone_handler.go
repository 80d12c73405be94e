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

// CustomerPhoneHandler holds dependencies for the /customerphones resource.
type CustomerPhoneHandler struct {
	uc     usecase.CustomerPhoneUsecase
	logger *slog.Logger
}

// NewCustomerPhoneHandler is the constructor for CustomerPhoneHandler, injected by Fx.
func NewCustomerPhoneHandler(uc usecase.CustomerPhoneUsecase, logger *slog.Logger) *CustomerPhoneHandler {
	return &CustomerPhoneHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /customerphones.
func (h *CustomerPhoneHandler) GetAll(c echo.Context) error {
	customerPhones, err := h.uc.GetAllCustomerPhones(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch customer phones", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch customerPhones")
	}

	return c.JSON(http.StatusOK, customerPhones)
}

// Create handles POST /customerphones.
func (h *CustomerPhoneHandler) Create(c echo.Context) error {
	var input entity.CustomerPhone
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateCustomerPhone(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /customerphones. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *CustomerPhoneHandler) Update(c echo.Context) error {
	var input entity.CustomerPhone
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateCustomerPhone(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /customerphones/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *CustomerPhoneHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteCustomerPhone(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
