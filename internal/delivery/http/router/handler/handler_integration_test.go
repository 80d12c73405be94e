package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"freightdesk/internal/domain/validation"
	"freightdesk/internal/infra/persistence/model"
	"freightdesk/internal/infra/persistence/postgres"
	"freightdesk/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer wires handlers over an in-memory SQLite database, the same
// stack the application runs minus fx and the network listener.
type testServer struct {
	echo *echo.Echo
	db   *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	validate := validation.New()

	vehicleTypeRepo := postgres.NewVehicleTypeRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	repairRecordRepo := postgres.NewRepairRecordRepository(db)

	vehicleTypeHandler := NewVehicleTypeHandler(impl.NewVehicleTypeService(vehicleTypeRepo, validate), discard)
	vehicleHandler := NewVehicleHandler(impl.NewVehicleService(vehicleRepo, validate), discard)
	repairRecordHandler := NewRepairRecordHandler(impl.NewRepairRecordService(repairRecordRepo, vehicleRepo, validate), discard)

	e := echo.New()
	for path, h := range map[string]interface {
		GetAll(c echo.Context) error
		Create(c echo.Context) error
		Update(c echo.Context) error
		Delete(c echo.Context) error
	}{
		"/vehicletypes":  vehicleTypeHandler,
		"/vehicles":      vehicleHandler,
		"/repairrecords": repairRecordHandler,
	} {
		group := e.Group(path)
		group.GET("", h.GetAll)
		group.POST("", h.Create)
		group.PUT("", h.Update)
		group.DELETE("/:id", h.Delete)
	}

	return &testServer{echo: e, db: db}
}

func (s *testServer) request(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}
