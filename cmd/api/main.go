// Package main is the entrypoint for the notekeeper API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/cache"
	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/handler"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/repository"
	"github.com/notekeeper/notekeeper/internal/server"
	"github.com/notekeeper/notekeeper/internal/service"
)

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	logger := initLogger(cfg)

	// Schema
	if cfg.MigrateOnStart {
		if err := repository.Migrate(ctx, cfg.DatabaseURL); err != nil {
			logger.Error("failed to apply migrations",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
			return err
		}
		logger.Info("database migrations applied")
	}

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL, repository.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		return err
	}
	logger.Info("connected to database",
		slog.Int("max_conns", int(cfg.DBMaxConns)),
		slog.Int("min_conns", int(cfg.DBMinConns)),
	)

	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.WithTTL(cfg.JWTTTL))
	if err != nil {
		repo.Close()
		logger.Error("failed to initialize token service", "error", err)
		return err
	}

	recorder := metrics.NewInMemory()
	accountOpts := []service.AccountOption{}

	routerCfg := handler.RouterConfig{
		Logger:             logger,
		Tokens:             tokens,
		Metrics:            recorder,
		Snapshotter:        recorder,
		DB:                 repo,
		IsDevelopment:      cfg.IsDevelopment(),
		AllowedOrigins:     cfg.GetCORSAllowedOrigins(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}

	// Optional profile cache
	var cacheClient *cache.Cache
	if cfg.CacheEnabled() {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			repo.Close()
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			return err
		}
		logger.Info("connected to Redis", slog.Duration("profile_ttl", cfg.ProfileCacheTTL))
		accountOpts = append(accountOpts, service.WithProfileCache(cache.NewProfileCache(cacheClient, cfg.ProfileCacheTTL)))
		routerCfg.Cache = cacheClient
	} else {
		logger.Info("profile cache disabled")
	}

	// Initialize services
	routerCfg.Accounts = service.NewAccountService(repo, tokens, logger, recorder, accountOpts...)
	routerCfg.Notes = service.NewNotesService(repo, logger, recorder)

	srv := server.New(
		handler.NewRouter(routerCfg),
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// Closed in reverse order: Redis first, then the pool.
	srv.OnShutdown("postgres", func(context.Context) error {
		repo.Close()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("redis", func(context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"addr", srv.Addr(),
		"env", cfg.AppEnv,
		"token_ttl", cfg.JWTTTL.String(),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With(slog.String("service", "notekeeper"))
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s&]+`)

// redactURL strips the password from a connection string.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes connection secrets from driver error messages.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
