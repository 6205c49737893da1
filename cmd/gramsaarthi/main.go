package main

import (
	"context"
	"log/slog"
	"os"

	"gramsaarthi/config"
	"gramsaarthi/internal/delivery"
	"gramsaarthi/internal/delivery/http"
	"gramsaarthi/internal/delivery/http/middleware"
	"gramsaarthi/internal/delivery/http/router/handler"
	"gramsaarthi/internal/domain/repository"
	"gramsaarthi/internal/infra/auth"
	logs "gramsaarthi/internal/infra/log"
	"gramsaarthi/internal/infra/persistence/dynamo"
	"gramsaarthi/internal/infra/persistence/memory"
	"gramsaarthi/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newAccountRepository,
		),
	)
}

// newAccountRepository selects the users table backend. Without a DynamoDB
// section in the config the service runs against the in-memory store, which
// keeps local development free of AWS credentials.
func newAccountRepository(ctx context.Context, cfg *config.Config) (repository.AccountRepository, error) {
	if cfg.DynamoDB == nil {
		return memory.NewAccountRepository(), nil
	}

	client, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return dynamo.NewAccountRepository(client, cfg.DynamoDB.UsersTable), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
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
