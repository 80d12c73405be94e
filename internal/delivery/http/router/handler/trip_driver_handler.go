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

// TripDriverHandler holds dependencies for the /tripdrivers resource.
type TripDriverHandler struct {
	uc     usecase.TripDriverUsecase
	logger *slog.Logger
}

// NewTripDriverHandler is the constructor for TripDriverHandler, injected by Fx.
func NewTripDriverHandler(uc usecase.TripDriverUsecase, logger *slog.Logger) *TripDriverHandler {
	return &TripDriverHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /tripdrivers.
func (h *TripDriverHandler) GetAll(c echo.Context) error {
	tripDrivers, err := h.uc.GetAllTripDrivers(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch trip drivers", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch tripDrivers")
	}

	return c.JSON(http.StatusOK, tripDrivers)
}

// Create handles POST /tripdrivers.
func (h *TripDriverHandler) Create(c echo.Context) error {
	var input entity.TripDriver
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateTripDriver(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /tripdrivers. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *TripDriverHandler) Update(c echo.Context) error {
	var input entity.TripDriver
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateTripDriver(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /tripdrivers/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *TripDriverHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteTripDriver(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
