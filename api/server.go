// ABOUTME: HTTP router wiring for the design screen preview server
// ABOUTME: Chi router with CORS, request logging, rate limiting and companion asset serving

package api

import (
	"net/http"
	"time"

	"designmount/api/handlers"
	"designmount/api/middleware"
	"designmount/core/interfaces"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window

	// AssetRoot is the URL prefix companion assets are served under. The
	// rewriter rebases every export reference onto this prefix, so the
	// router must answer it.
	AssetRoot string

	// AssetsDir is the local directory served under AssetRoot. Empty
	// disables asset serving, for deployments that front assets with a CDN.
	AssetsDir string
}

// NewRouter creates the preview server router with middleware configured
func NewRouter(cfg APIConfig, screens *handlers.ScreenHandler) chi.Router {
	router := chi.NewRouter()

	// CORS first so every response carries the headers, error responses
	// included.
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Screen-State", "X-Request-ID"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	router.Get("/healthz", healthHandler)

	if screens != nil {
		screens.RegisterRoutes(router)
	}

	if cfg.AssetsDir != "" {
		assetRoot := cfg.AssetRoot
		if assetRoot == "" {
			assetRoot = "/assets/"
		}
		fileServer := http.StripPrefix(assetRoot, http.FileServer(http.Dir(cfg.AssetsDir)))
		router.Handle(assetRoot+"*", fileServer)
	}

	return router
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
