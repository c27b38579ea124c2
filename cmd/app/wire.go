//go:build wireinject
// +build wireinject

package main

import (
	"talentsync/config"
	"talentsync/internal/command"
	"talentsync/internal/cron"
	"talentsync/internal/cron/job"
	"talentsync/internal/database"
	"talentsync/internal/handler"
	"talentsync/internal/middleware"
	"talentsync/internal/router"
	"talentsync/internal/service"
	"talentsync/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp HTTP server 與 cron
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand export / reconcile 子命令共用，不啟動 HTTP 與 cron
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			job.NewReconcileJob,
			command.ProviderSet,
		),
	)
}
