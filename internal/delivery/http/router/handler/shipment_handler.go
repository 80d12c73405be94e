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

// ShipmentHandler holds dependencies for the /shipments resource.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /shipments.
func (h *ShipmentHandler) GetAll(c echo.Context) error {
	shipments, err := h.uc.GetAllShipments(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch shipments", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch shipments")
	}

	return c.JSON(http.StatusOK, shipments)
}

// Create handles POST /shipments.
func (h *ShipmentHandler) Create(c echo.Context) error {
	var input entity.Shipment
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateShipment(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /shipments. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *ShipmentHandler) Update(c echo.Context) error {
	var input entity.Shipment
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateShipment(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /shipments/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *ShipmentHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteShipment(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
