package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/dataset"
	"sales-dashboard/internal/middleware"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/server"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/ui/templates"
	"sales-dashboard/internal/warehouse"
)

const (
	renderTimeout  = 10 * time.Second
	warmupTimeout  = 60 * time.Second
	cacheMaxAge    = "public, max-age=300"
	connectTimeout = 5 * time.Second
)

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := templates.Dashboard().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"addr", cfg.Address(),
	)

	source, closeSource, err := newSource(cfg, logger)
	if err != nil {
		logger.Error("failed to open sales data source", "error", err)
		os.Exit(1)
	}

	cache, closeCache, err := newCache(cfg)
	if err != nil {
		logger.Error("failed to connect to snapshot cache", "error", err)
		os.Exit(1)
	}

	loader := dataset.NewLoader(source, cache, logger)
	analytics := services.NewAnalytics(loader, logger)

	// Warm the snapshot so the first request does not pay the load.
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	records, err := analytics.Snapshot(ctx)
	cancel()
	if err != nil {
		logger.Error("failed to load sales data", "error", err)
		os.Exit(1)
	}
	logger.Info("sales data loaded", "rows", len(records))

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard,
	}

	srv := server.NewServer(analytics, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
		middleware.Compression(logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	if closeSource != nil {
		gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
			logger.Info("closing warehouse connection")
			return closeSource()
		})
	}
	if closeCache != nil {
		gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
			logger.Info("closing cache connection")
			return closeCache()
		})
	}

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}

// newSource picks the sales data source from configuration: the warehouse
// when a DSN is set, otherwise the CSV extract.
func newSource(cfg *config.Config, logger *slog.Logger) (warehouse.Source, func() error, error) {
	if cfg.Warehouse.DSN != "" {
		db, err := warehouse.OpenPostgres(cfg.Warehouse.DSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using warehouse source")
		return warehouse.NewPostgresSource(db, cfg.Warehouse.QueryTimeout, logger), db.Close, nil
	}

	logger.Info("using CSV source", "file", cfg.Warehouse.CSVFile)
	return warehouse.NewCSVSource(cfg.Warehouse.CSVFile, logger), nil, nil
}

// newCache picks the snapshot cache: Redis when an address is configured,
// otherwise process memory.
func newCache(cfg *config.Config) (dataset.SnapshotCache, func() error, error) {
	if cfg.Cache.RedisAddr == "" {
		return dataset.NewMemoryCache(cfg.Cache.TTL), nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}

	return dataset.NewRedisCache(client, cfg.Cache.TTL), client.Close, nil
}
