//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/zerozero/zerozero/internal/bootstrap"
	"github.com/zerozero/zerozero/internal/domain/analytics"
	"github.com/zerozero/zerozero/internal/domain/answers"
	"github.com/zerozero/zerozero/internal/domain/auth"
	"github.com/zerozero/zerozero/internal/domain/zone"
	"github.com/zerozero/zerozero/internal/infra/config"
	httpiface "github.com/zerozero/zerozero/internal/interface/http"
	"github.com/zerozero/zerozero/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		providePostgresPool,
		provideValkeyClient,
		provideAuthConfig,
		provideZoneConfig,
		provideAnalyticsConfig,
		provideAuthRepository,
		provideAnswerRepository,
		provideAnalyticsStore,
		provideScrapedStore,
		auth.NewService,
		answers.NewService,
		zone.NewService,
		analytics.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
