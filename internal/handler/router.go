package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/middleware"
	"github.com/notekeeper/notekeeper/internal/service"
)

// RouterConfig holds everything the HTTP surface is built from.
type RouterConfig struct {
	Logger   *slog.Logger
	Accounts *service.AccountService
	Notes    *service.NotesService
	Tokens   middleware.TokenVerifier

	Metrics     metrics.Recorder
	Snapshotter metrics.Snapshotter

	// DB and Cache back /readyz. Cache is nil when the profile cache is disabled.
	DB    HealthChecker
	Cache HealthChecker

	IsDevelopment      bool
	AllowedOrigins     []string
	MaxRequestBodySize int64
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := New()
	healthHandler := NewHealthHandler(cfg.DB, cfg.Cache)
	metricsHandler := NewMetricsHandler(cfg.Snapshotter)
	authHandler := NewAuthHandler(cfg.Accounts, logger)
	noteHandler := NewNoteHandler(cfg.Notes, logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.AllowedOrigins

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Probes
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	requireAuth := middleware.Auth(middleware.AuthConfig{
		Logger:  logger,
		Tokens:  cfg.Tokens,
		Metrics: cfg.Metrics,
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.APIHealth)
		r.Get("/openapi.yaml", OpenAPI)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(requireAuth).Get("/profile", authHandler.Profile)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", noteHandler.List)
			r.Post("/", noteHandler.Create)
			r.Get("/{id}", noteHandler.Get)
			r.Put("/{id}", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
