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

// RepairRecordHandler holds dependencies for the /repairrecords resource.
type RepairRecordHandler struct {
	uc     usecase.RepairRecordUsecase
	logger *slog.Logger
}

// NewRepairRecordHandler is the constructor for RepairRecordHandler, injected by Fx.
func NewRepairRecordHandler(uc usecase.RepairRecordUsecase, logger *slog.Logger) *RepairRecordHandler {
	return &RepairRecordHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /repairrecords.
func (h *RepairRecordHandler) GetAll(c echo.Context) error {
	repairRecords, err := h.uc.GetAllRepairRecords(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch repair records", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch repairRecords")
	}

	return c.JSON(http.StatusOK, repairRecords)
}

// Create handles POST /repairrecords.
func (h *RepairRecordHandler) Create(c echo.Context) error {
	var input entity.RepairRecord
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateRepairRecord(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /repairrecords. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *RepairRecordHandler) Update(c echo.Context) error {
	var input entity.RepairRecord
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateRepairRecord(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /repairrecords/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *RepairRecordHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteRepairRecord(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
