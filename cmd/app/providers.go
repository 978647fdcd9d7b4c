package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/zerozero/zerozero/internal/domain/analytics"
	"github.com/zerozero/zerozero/internal/domain/answers"
	"github.com/zerozero/zerozero/internal/domain/auth"
	"github.com/zerozero/zerozero/internal/domain/zone"
	"github.com/zerozero/zerozero/internal/infra/analyticsstore"
	"github.com/zerozero/zerozero/internal/infra/answerrepo"
	"github.com/zerozero/zerozero/internal/infra/config"
	"github.com/zerozero/zerozero/internal/infra/scrapedstore"
	"github.com/zerozero/zerozero/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		Google: auth.GoogleConfig{
			ClientID:             cfg.Auth.Google.ClientID,
			ClientSecret:         cfg.Auth.Google.ClientSecret,
			RedirectURL:          cfg.Auth.Google.RedirectURL,
			TokenEncryptionKey:   cfg.Auth.Google.TokenEncryptionKey,
			PostLoginRedirectURL: cfg.Auth.Google.PostLoginRedirectURL,
		},
	}
}

func provideZoneConfig(cfg *config.Config) zone.Config {
	return zone.Config{SwitchAdviceURL: cfg.Zone.SwitchAdviceURL}
}

func provideAnalyticsConfig(cfg *config.Config) analytics.Config {
	return analytics.Config{TrendingLimit: cfg.Analytics.TrendingLimit}
}

// providePostgresPool returns a shared connection pool, or nil when Postgres
// is not configured or unreachable. Repositories fall back to memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideAuthRepository(pool *pgxpool.Pool, logger *slog.Logger) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideAnswerRepository(pool *pgxpool.Pool, logger *slog.Logger) answers.Repository {
	if pool == nil {
		return answerrepo.NewMemoryRepository()
	}
	return answerrepo.NewPostgresRepository(pool)
}

// provideValkeyClient returns a shared client, or nil when Valkey is disabled
// or unreachable. Stores fall back to memory.
func provideValkeyClient(cfg *config.Config, logger *slog.Logger) valkey.Client {
	if !cfg.Valkey.Enabled {
		return nil
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory stores", "error", err)
		return nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory stores", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory stores", "error", err)
		client.Close()
		return nil
	}
	logger.Info("valkey stores enabled", "addr", cfg.Valkey.Addr)
	return client
}

func provideAnalyticsStore(client valkey.Client, logger *slog.Logger) analytics.Store {
	if client == nil {
		return analyticsstore.NewMemoryStore()
	}
	return analyticsstore.NewValkeyStore(client, "events")
}

func provideScrapedStore(cfg *config.Config, client valkey.Client, logger *slog.Logger) zone.ScrapedStore {
	if client == nil {
		return scrapedstore.NewMemoryStore(cfg.Scraped.TTL)
	}
	return scrapedstore.NewValkeyStore(client, "scraped", cfg.Scraped.TTL)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
