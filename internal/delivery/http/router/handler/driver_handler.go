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

// DriverHandler holds dependencies for the /drivers resource.
type DriverHandler struct {
	uc     usecase.DriverUsecase
	logger *slog.Logger
}

// NewDriverHandler is the constructor for DriverHandler, injected by Fx.
func NewDriverHandler(uc usecase.DriverUsecase, logger *slog.Logger) *DriverHandler {
	return &DriverHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /drivers.
func (h *DriverHandler) GetAll(c echo.Context) error {
	drivers, err := h.uc.GetAllDrivers(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch drivers", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch drivers")
	}

	return c.JSON(http.StatusOK, drivers)
}

// Create handles POST /drivers.
func (h *DriverHandler) Create(c echo.Context) error {
	var input entity.Driver
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateDriver(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /drivers. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *DriverHandler) Update(c echo.Context) error {
	var input entity.Driver
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateDriver(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /drivers/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *DriverHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteDriver(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
