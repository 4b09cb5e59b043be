// Package api provides the HTTP layer of the DesignMount preview server.
// It serves the configured design screens as fully mounted pages, a JSON
// index of the screens, and asset audit reports.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Chi router configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// - GET /screens: JSON index of the configured screens
// - GET /screens/{name}: the screen mounted into the preview shell, as HTML
// - GET /screens/{name}/assets: audit report for the screen's asset references
// - GET /healthz: liveness probe
// - GET /assets/*: the companion asset directory, when configured
//
// Every screen response carries an X-Screen-State header with the lifecycle
// state the mount settled in: ready, failed, or loading. A failed mount is
// still a 200; the page then shows the fallback content, which is exactly
// what an embedding application would render.
//
// # Middleware
//
// The router includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling, with X-Screen-State exposed to browser callers
//
// # Usage Example
//
//	screenHandler := handlers.NewScreenHandler(deps, screens, engineCfg, infoSvc, auditSvc)
//
//	router := api.NewRouter(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	    AssetRoot:  "/assets/",
//	    AssetsDir:  "assets/design",
//	}, screenHandler)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Domain errors are mapped to HTTP status codes: not-found to 404,
// validation to 400, a missing environment capability to 503, and a failed
// acquisition to 502. Error responses are JSON:
//
//	{
//	    "error": "screen not found: dashboard"
//	}
package api
