// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, host document mutation, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache that survives restarts
// - hostdoc/goquery: Host document implementation on a goquery tree
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger backed by logrus
// - logger/standard: Zero-dependency fallback logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(1*time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "design:https://example.com/a.html", markup, 1*time.Hour)
//	value, err := cache.Get(ctx, "design:https://example.com/a.html")
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("designmount.db")
//	if err != nil {
//	    // Handle error
//	}
//	defer cache.Close()
//
// # Host Document
//
// The goquery host document gives the engine a mutable server-side DOM:
//
//	doc, err := goquery.NewDocument(shellHTML)
//	ref, err := doc.AppendStylesheet("/assets/common.css")
//	err = doc.SetContainerHTML("design-root", markup)
//	page, err := doc.Serialize()
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://designs.example.com/welcome.html")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Mounting screen", map[string]interface{}{
//	    "screen": "welcome",
//	    "source": "embedded",
//	})
package infrastructure
