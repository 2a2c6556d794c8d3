// ABOUTME: Component wiring shared by the API server and the CLI
// ABOUTME: Builds cache, storage, fetcher, generator and services from configuration

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"web2one-api/api"
	"web2one-api/api/handlers"
	"web2one-api/core/accounts"
	"web2one-api/core/conversion"
	"web2one-api/core/credits"
	"web2one-api/core/fetch"
	"web2one-api/core/interfaces"
	"web2one-api/core/projects"
	"web2one-api/core/reconstruct"
	"web2one-api/infrastructure/ai/openai"
	"web2one-api/infrastructure/ai/relay"
	"web2one-api/infrastructure/cache/memory"
	"web2one-api/infrastructure/cache/redis"
	stdhttp "web2one-api/infrastructure/http/standard"
	"web2one-api/infrastructure/logger/structured"
	"web2one-api/infrastructure/storage/sqlite"
	"web2one-api/pkg/config"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// App holds every wired component
type App struct {
	Config *config.Config
	Logger interfaces.Logger
	Deps   interfaces.Dependencies

	Store         *sqlite.Store
	Fetcher       *fetch.ProxyFetcher
	Reconstructor *reconstruct.Service
	Credits       *credits.Service
	Accounts      *accounts.Service
	Projects      *projects.Service
	Conversions   *conversion.Service

	closers []func() error
}

// NewLogger creates the structured logger described by cfg.
// out receives entries when no log file is configured; nil means stdout.
func NewLogger(cfg config.LogConfig, out io.Writer) *structured.Logger {
	return structured.New(structured.Config{
		Level:      cfg.Level,
		File:       cfg.File,
		Output:     out,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 14,
	})
}

// New wires all components. Close releases the store and cache.
func New(cfg *config.Config, logger interfaces.Logger) (*App, error) {
	store, err := sqlite.NewStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		closers: []func() error{store.Close},
	}

	cache := a.newCache()

	// Relays are tried once each; the fetcher moves on instead of retrying.
	relayClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.RelayTimeout,
		stdhttp.WithUserAgent(cfg.Fetch.UserAgent),
		stdhttp.WithLogger(logger),
	)

	a.Deps = interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: relayClient,
		Logger:     logger,
	}

	strategies := fetch.RelayStrategies(fetch.RelaysFromConfig(cfg.Fetch.Relays), a.Deps.HTTPClient)
	if cfg.Fetch.Direct {
		strategies = append(strategies, fetch.NewDirectStrategy(cfg.Fetch.RelayTimeout))
	}
	a.Fetcher = fetch.NewProxyFetcher(strategies, fetch.Config{
		MinLength:      cfg.Fetch.MinLength,
		AttemptTimeout: cfg.Fetch.RelayTimeout,
	}, logger)

	generator, err := newGenerator(cfg.Generation, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Reconstructor = reconstruct.NewService(
		reconstruct.NewBuilder(cfg.Conversion.MaxSourceChars),
		reconstruct.NewClient(generator, reconstruct.ClientConfig{
			Temperature:     cfg.Generation.Temperature,
			ReasoningEffort: cfg.Generation.ReasoningEffort,
			Timeout:         cfg.Generation.Timeout,
		}, logger),
	)

	a.Credits = credits.NewService(store, a.Deps.Cache, logger)
	a.Accounts = accounts.NewService(store, store, a.Deps.Cache, logger)
	a.Projects = projects.NewService(store)
	a.Conversions = conversion.NewService(
		a.Fetcher,
		a.Reconstructor,
		a.Projects,
		a.Credits,
		conversion.Config{PacingDelay: cfg.Conversion.PacingDelay},
		logger,
	)

	return a, nil
}

func (a *App) newCache() interfaces.Cache {
	cfg := a.Config.Cache
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			a.Logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		a.closers = append(a.closers, redisCache.Close)
		a.Logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache
	case "sqlite":
		cache := a.Store.Cache()
		ctx, cancel := context.WithCancel(context.Background())
		interval := cfg.Memory.CleanupInterval
		if interval <= 0 {
			interval = 10 * time.Minute
		}
		go cache.RunCleanup(ctx, interval)
		a.closers = append(a.closers, func() error {
			cancel()
			return nil
		})
		a.Logger.Info("Using SQLite cache", map[string]interface{}{
			"path": a.Config.Storage.DatabasePath,
		})
		return cache
	}

	a.Logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Memory.CleanupInterval)
}

func newGenerator(cfg config.GenerationConfig, logger interfaces.Logger) (interfaces.Generator, error) {
	switch cfg.Provider {
	case "relay":
		client := stdhttp.NewStandardHTTPClient(cfg.Timeout, stdhttp.WithLogger(logger))
		return relay.NewGenerator(cfg.RelayURL, client, logger)
	case "openai":
		return openai.NewGenerator(openai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}

// Router builds the HTTP API with every handler registered
func (a *App) Router() http.Handler {
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     a.Logger,
		RateLimit:  a.Config.Server.RateLimit,
		RateWindow: a.Config.Server.RateWindow,
	})

	handlers.NewHealthHandler(Version, a.Store).RegisterRoutes(humaAPI)
	handlers.NewConversionHandler(a.Conversions, a.Reconstructor, a.Accounts, a.Logger).RegisterRoutes(humaAPI)
	handlers.NewUserHandler(a.Accounts, a.Credits).RegisterRoutes(humaAPI)
	handlers.NewKeyHandler(a.Accounts).RegisterRoutes(humaAPI)
	handlers.NewProjectHandler(a.Projects).RegisterRoutes(humaAPI)

	return router
}

// Close releases resources in reverse order of acquisition
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
