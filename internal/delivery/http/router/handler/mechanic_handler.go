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

// MechanicHandler holds dependencies for the /mechanics resource.
type MechanicHandler struct {
	uc     usecase.MechanicUsecase
	logger *slog.Logger
}

// NewMechanicHandler is the constructor for MechanicHandler, injected by Fx.
func NewMechanicHandler(uc usecase.MechanicUsecase, logger *slog.Logger) *MechanicHandler {
	return &MechanicHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /mechanics.
func (h *MechanicHandler) GetAll(c echo.Context) error {
	mechanics, err := h.uc.GetAllMechanics(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch mechanics", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch mechanics")
	}

	return c.JSON(http.StatusOK, mechanics)
}

// Create handles POST /mechanics.
func (h *MechanicHandler) Create(c echo.Context) error {
	var input entity.Mechanic
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateMechanic(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /mechanics. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *MechanicHandler) Update(c echo.Context) error {
	var input entity.Mechanic
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateMechanic(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /mechanics/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *MechanicHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteMechanic(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
