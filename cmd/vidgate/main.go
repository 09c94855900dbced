package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"vidgate/config"
	"vidgate/internal/delivery"
	"vidgate/internal/delivery/http"
	"vidgate/internal/delivery/http/middleware"
	"vidgate/internal/delivery/http/router/handler"
	"vidgate/internal/delivery/scheduler"
	"vidgate/internal/domain/service"
	"vidgate/internal/infra/auth"
	"vidgate/internal/infra/authgateway"
	"vidgate/internal/infra/lock"
	logs "vidgate/internal/infra/log"
	"vidgate/internal/infra/metrics"
	"vidgate/internal/infra/persistence"
	"vidgate/internal/infra/pubsub"
	"vidgate/internal/infra/sealer"
	"vidgate/internal/infra/transport"
	"vidgate/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.NewRegistry,
			metrics.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			authgateway.NewFactory,
			lock.New,
			sealer.New,
			metrics.NewRecorder,
			fx.Annotate(
				transport.NewBot,
				fx.As(new(service.ContentSender), new(service.ProgressNotifier)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionTable,
			impl.NewEntitlementService,
			impl.NewLoginService,
			impl.NewContentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLoginHandler,
			handler.NewContentHandler,
			handler.NewEntitlementHandler,
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
			fx.Annotate(
				scheduler.New,
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
