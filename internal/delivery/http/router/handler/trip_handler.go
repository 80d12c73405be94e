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

// TripHandler holds dependencies for the /trips resource.
type TripHandler struct {
	uc     usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /trips.
func (h *TripHandler) GetAll(c echo.Context) error {
	trips, err := h.uc.GetAllTrips(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch trips", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch trips")
	}

	return c.JSON(http.StatusOK, trips)
}

// Create handles POST /trips.
func (h *TripHandler) Create(c echo.Context) error {
	var input entity.Trip
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateTrip(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /trips. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *TripHandler) Update(c echo.Context) error {
	var input entity.Trip
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateTrip(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /trips/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *TripHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteTrip(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
