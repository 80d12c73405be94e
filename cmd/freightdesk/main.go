package main

import (
	"context"
	"log/slog"
	"os"

	"freightdesk/config"
	"freightdesk/internal/delivery"
	"freightdesk/internal/delivery/http"
	"freightdesk/internal/delivery/http/router/handler"
	"freightdesk/internal/domain/validation"
	logs "freightdesk/internal/infra/log"
	"freightdesk/internal/infra/persistence/postgres"
	"freightdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		validation.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVehicleTypeRepository,
			postgres.NewVehicleRepository,
			postgres.NewEmployeeRepository,
			postgres.NewCertificationRepository,
			postgres.NewMechanicRepository,
			postgres.NewRepairRecordRepository,
			postgres.NewCustomerRepository,
			postgres.NewCustomerPhoneRepository,
			postgres.NewShipmentRepository,
			postgres.NewTripRepository,
			postgres.NewDriverRepository,
			postgres.NewTripDriverRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVehicleTypeService,
			impl.NewVehicleService,
			impl.NewEmployeeService,
			impl.NewCertificationService,
			impl.NewMechanicService,
			impl.NewRepairRecordService,
			impl.NewCustomerService,
			impl.NewCustomerPhoneService,
			impl.NewShipmentService,
			impl.NewTripService,
			impl.NewDriverService,
			impl.NewTripDriverService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewVehicleTypeHandler,
			handler.NewVehicleHandler,
			handler.NewEmployeeHandler,
			handler.NewCertificationHandler,
			handler.NewMechanicHandler,
			handler.NewRepairRecordHandler,
			handler.NewCustomerHandler,
			handler.NewCustomerPhoneHandler,
			handler.NewShipmentHandler,
			handler.NewTripHandler,
			handler.NewDriverHandler,
			handler.NewTripDriverHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
