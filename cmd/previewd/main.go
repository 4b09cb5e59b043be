// ABOUTME: Main entry point for the DesignMount preview server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"designmount/api"
	"designmount/api/handlers"
	"designmount/core/docinfo"
	"designmount/core/interfaces"
	"designmount/core/rewrite"
	"designmount/core/services"
	"designmount/infrastructure/cache/memory"
	"designmount/infrastructure/cache/redis"
	"designmount/infrastructure/cache/sqlite"
	stdhttp "designmount/infrastructure/http/standard"
	logruslogger "designmount/infrastructure/logger/logrus"
	stdlogger "designmount/infrastructure/logger/standard"
	"designmount/pkg/config"
	"designmount/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	if cfg.Log.Format == "text" {
		logger = stdlogger.NewStandardLogger()
	} else {
		logger = logruslogger.NewLogger(cfg.Log.Level)
	}
	logger.Info("Starting DesignMount preview server", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"asset_root": cfg.Engine.AssetRoot,
	})

	// Feature flags act as kill switches for optional capabilities
	ctx := context.Background()
	flags := featureflags.NewEnvManager("")
	flagStates := map[string]interface{}{}
	for flag, enabled := range flags.GetAllFlags() {
		flagStates[string(flag)] = enabled
	}
	logger.Info("Feature flags", flagStates)

	// Create cache
	cache := buildCache(cfg, logger)

	// Create HTTP client unless remote acquisition is switched off
	var httpClient interfaces.HTTPClient
	if flags.IsEnabled(ctx, featureflags.RemoteScreens) {
		httpClient = stdhttp.NewStandardHTTPClient(30 * time.Second)
	} else {
		logger.Info("Remote screens disabled, serving embedded documents only", nil)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Load the screens manifest
	screens := config.DefaultScreens()
	if cfg.Engine.ScreensFile != "" {
		loaded, err := config.LoadScreens(cfg.Engine.ScreensFile)
		if err != nil {
			log.Fatalf("Failed to load screens manifest: %v", err)
		}
		screens = loaded
	}
	logger.Info("Screens configured", map[string]interface{}{
		"count": len(screens),
	})

	// Create optional services. A disabled flag leaves the interface nil and
	// the handler degrades the same way it does for a missing dependency.
	var infoService interfaces.DocumentInfoService
	if flags.IsEnabled(ctx, featureflags.DocumentInfo) {
		infoService = docinfo.NewService(cache, logger)
	}

	var auditService interfaces.AssetAuditService
	if flags.IsEnabled(ctx, featureflags.AssetAudit) {
		auditService = services.NewAssetAuditService(deps, rewrite.NewRewriter(rewrite.Config{
			AssetRoot: cfg.Engine.AssetRoot,
		}))
	}

	// Create and register handlers
	screenHandler := handlers.NewScreenHandler(deps, screens, cfg.Engine, infoService, auditService)

	// Create router with middleware
	router := api.NewRouter(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: time.Duration(cfg.RateLimit.Window) * time.Second,
		AssetRoot:  cfg.Engine.AssetRoot,
		AssetsDir:  cfg.Engine.AssetsDir,
	}, screenHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend. A backend that cannot be
// reached falls back to memory so the preview server still comes up.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		return memory.NewMemoryCache(
			time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
			time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
		)
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memoryCache()
	}
}

func init() {
	// Print banner
	fmt.Println(`
    ____            _             __  ___                  __
   / __ \___  _____(_)___ _____  /  |/  /___  __  ______  / /_
  / / / / _ \/ ___/ / __ '/ __ \/ /|_/ / __ \/ / / / __ \/ __/
 / /_/ /  __(__  ) / /_/ / / / / /  / / /_/ / /_/ / / / / /_
/_____/\___/____/_/\__, /_/ /_/_/  /_/\____/\__,_/_/ /_/\__/
                  /____/
	`)
}
