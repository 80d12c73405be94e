// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freightdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VehicleTypeHandler   *handler.VehicleTypeHandler
	VehicleHandler       *handler.VehicleHandler
	EmployeeHandler      *handler.EmployeeHandler
	CertificationHandler *handler.CertificationHandler
	MechanicHandler      *handler.MechanicHandler
	RepairRecordHandler  *handler.RepairRecordHandler
	CustomerHandler      *handler.CustomerHandler
	CustomerPhoneHandler *handler.CustomerPhoneHandler
	ShipmentHandler      *handler.ShipmentHandler
	TripHandler          *handler.TripHandler
	DriverHandler        *handler.DriverHandler
	TripDriverHandler    *handler.TripDriverHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// resource is the uniform handler surface every freight resource exposes.
type resource interface {
	GetAll(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	resources := map[string]resource{
		"/vehicletypes":   r.params.VehicleTypeHandler,
		"/vehicles":       r.params.VehicleHandler,
		"/employees":      r.params.EmployeeHandler,
		"/certifications": r.params.CertificationHandler,
		"/mechanics":      r.params.MechanicHandler,
		"/repairrecords":  r.params.RepairRecordHandler,
		"/customers":      r.params.CustomerHandler,
		"/customerphones": r.params.CustomerPhoneHandler,
		"/shipments":      r.params.ShipmentHandler,
		"/trips":          r.params.TripHandler,
		"/drivers":        r.params.DriverHandler,
		"/tripdrivers":    r.params.TripDriverHandler,
	}

	for path, h := range resources {
		group := e.Group(path)
		{
			group.GET("", h.GetAll)
			group.POST("", h.Create)
			group.PUT("", h.Update)
			group.DELETE("/:id", h.Delete)
		}
	}
}
