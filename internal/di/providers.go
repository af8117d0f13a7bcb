package di

import (
	"fmt"

	"BayPortal/internal/handler/api"
	"BayPortal/internal/service/backend"
	"BayPortal/internal/usecase"
	"BayPortal/pkg/cache"
	"BayPortal/pkg/config"
	xhttp "BayPortal/pkg/http"
	applogger "BayPortal/pkg/logger"
	"BayPortal/pkg/metrics"
	"BayPortal/pkg/server"
)

// ProvideLogger creates the application logger with the warn/error collector
// attached.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	l.AttachCollector(64)
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache creates the view cache. Redis when configured, in-memory
// otherwise; nil when caching is disabled entirely.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	if cfg.Cache.Redis.Enabled {
		rc, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(rc, cache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize)), nil
	}

	return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize)), nil
}

// ProvideBackendClient creates the content backend gateway.
func ProvideBackendClient(cfg *config.Config, rec *metrics.Recorder) *backend.Client {
	return backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Backend.UserAgent, rec)
}

// ProvideViewsHandler wires the per-view use cases into the HTTP handler.
func ProvideViewsHandler(
	cfg *config.Config,
	l *applogger.Logger,
	rec *metrics.Recorder,
	cs cache.Service,
	bc *backend.Client,
) xhttp.Handler {
	city := usecase.NewCityDashboardUseCase(bc, l, rec,
		cfg.Views.DefaultCuisine, cfg.Views.RestaurantLimit, cfg.Views.DealLimit, cfg.Views.GossipLimit)
	financial := usecase.NewFinancialStatusUseCase(bc, l, rec)
	trends := usecase.NewTechTrendsUseCase(bc, l, rec, cfg.Views.VideoLimit)
	actions := usecase.NewTodayActionsUseCase(bc, cs, l, rec, cfg.Cache.ActionsTTL)

	return api.NewViewsHandler(l, cs, city, financial, trends, actions, bc, cfg.Environment)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, cs cache.Service, h xhttp.Handler) *server.App {
	return server.New(cfg, l, cs, h)
}
