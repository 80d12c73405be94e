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

// CertificationHandler holds dependencies for the /certifications resource.
type CertificationHandler struct {
	uc     usecase.CertificationUsecase
	logger *slog.Logger
}

// NewCertificationHandler is the constructor for CertificationHandler, injected by Fx.
func NewCertificationHandler(uc usecase.CertificationUsecase, logger *slog.Logger) *CertificationHandler {
	return &CertificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAll handles GET /certifications.
func (h *CertificationHandler) GetAll(c echo.Context) error {
	certifications, err := h.uc.GetAllCertifications(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch certifications", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "Failed to fetch certifications")
	}

	return c.JSON(http.StatusOK, certifications)
}

// Create handles POST /certifications.
func (h *CertificationHandler) Create(c echo.Context) error {
	var input entity.Certification
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	created, err := h.uc.CreateCertification(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /certifications. The body is the full replacement state;
// a missing identifier is rejected by the service.
func (h *CertificationHandler) Update(c echo.Context) error {
	var input entity.Certification
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}

	updated, err := h.uc.UpdateCertification(c.Request().Context(), &input)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /certifications/:id. A non-numeric identifier matches
// no row and surfaces as not found.
func (h *CertificationHandler) Delete(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.uc.DeleteCertification(c.Request().Context(), uint(id)); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
