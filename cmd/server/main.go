// Command server exposes the land ownership registry over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/asakaida/landtree/internal/handlers"
	"github.com/asakaida/landtree/internal/infrastructure/config"
	"github.com/asakaida/landtree/internal/infrastructure/metrics"
	"github.com/asakaida/landtree/internal/repositories/csvstore"
	"github.com/asakaida/landtree/internal/services"
	"github.com/asakaida/landtree/pkg/cache"
	"github.com/asakaida/landtree/pkg/cache/memorycache"
)

const defaultEnv = "dev"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// Get environment from ENV variable or use default
	env := os.Getenv("ENV")
	if env == "" {
		env = defaultEnv
	}

	// Initialize configuration
	if err := config.InitConfig(env); err != nil {
		logger.Fatal("failed to initialize config", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Load the ownership registry from the CSV sources. The registry is
	// built once and read-only for the lifetime of the process.
	store := csvstore.New(cfg.Data.RelationsPath, cfg.Data.OwnershipPath)
	registry, err := services.LoadRegistry(context.Background(), store, store)
	if err != nil {
		logger.Fatal("failed to load registry", zap.Error(err))
	}

	logger.Info("registry loaded",
		zap.String("relations", cfg.Data.RelationsPath),
		zap.String("ownership", cfg.Data.OwnershipPath),
		zap.Int("companies", registry.CompanyCount()))

	// Optional render cache
	collector := metrics.NewCollector()
	var renderCache *memorycache.Cache
	if cfg.Cache.Enabled {
		renderCache = memorycache.New(&memorycache.Config{
			MaxEntries:  cfg.Cache.MaxEntries,
			TTL:         time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
			EnableStats: cfg.Cache.Metrics,
		})
		collector.SetCache(renderCache)
	}
	exporter := metrics.NewPrometheusExporter(collector)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware(collector, exporter))

	treeHandler := handlers.NewTreeHandler(registry, cacheOrNil(renderCache), logger)
	treeHandler.Register(e)

	// Metrics server; cache gauges refresh on every scrape.
	metricsMux := http.NewServeMux()
	promHandler := promhttp.Handler()
	metricsMux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		exporter.UpdateCacheMetrics()
		promHandler.ServeHTTP(w, r)
	})
	metricsServer := &http.Server{
		Addr:    cfg.Server.MetricsAddr(),
		Handler: metricsMux,
	}

	serverErrors := make(chan error, 2)

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.Addr()))
		if err := e.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	go func() {
		logger.Info("metrics server listening", zap.String("addr", cfg.Server.MetricsAddr()))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErrors:
		logger.Fatal("server error", zap.Error(err))
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http server shutdown failed", zap.Error(err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", zap.Error(err))
		}

		logger.Info("shutdown complete")
	}
}

// cacheOrNil avoids handing the handler a typed-nil cache interface.
func cacheOrNil(c *memorycache.Cache) cache.Cache {
	if c == nil {
		return nil
	}
	return c
}
