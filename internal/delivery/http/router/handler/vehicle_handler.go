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

// VehicleHandler holds dependencies for the /vehicles resource.
type VehicleHandler struct {
	uc     usecase.VehicleUsecase
	logger *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /vehicles.
func (h *VehicleHandler) GetAll(c echo.Context) error {
	vehicles, err := h.uc.GetAllVehicles(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch vehicles", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch vehicles")
	}

	return c.JSON(http.StatusOK, vehicles)
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var input entity.Vehicle
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateVehicle(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /vehicles. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *VehicleHandler) Update(c echo.Context) error {
	var input entity.Vehicle
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateVehicle(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /vehicles/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteVehicle(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
