// Package handler contains the HTTP handlers for every freight resource.
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

// VehicleTypeHandler holds dependencies for the /vehicletypes resource.
type VehicleTypeHandler struct {
	uc     usecase.VehicleTypeUsecase
	logger *slog.Logger
}

// NewVehicleTypeHandler is the constructor for VehicleTypeHandler, injected by Fx.
func NewVehicleTypeHandler(uc usecase.VehicleTypeUsecase, logger *slog.Logger) *VehicleTypeHandler {
	return &VehicleTypeHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /vehicletypes.
func (h *VehicleTypeHandler) GetAll(c echo.Context) error {
	vehicleTypes, err := h.uc.GetAllVehicleTypes(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch vehicle types", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch vehicleTypes")
	}

	return c.JSON(http.StatusOK, vehicleTypes)
}

// Create handles POST /vehicletypes.
func (h *VehicleTypeHandler) Create(c echo.Context) error {
	var input entity.VehicleType
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateVehicleType(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /vehicletypes. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *VehicleTypeHandler) Update(c echo.Context) error {
	var input entity.VehicleType
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateVehicleType(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /vehicletypes/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *VehicleTypeHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteVehicleType(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
