// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, engine and rate limiting

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Engine contains design screen engine configuration
	Engine EngineConfig

	// RateLimit contains request rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int

	// CleanupInterval is how often expired entries are evicted, in seconds
	CleanupInterval int
}

// EngineConfig holds design screen engine configuration
type EngineConfig struct {
	// AssetRoot is the absolute path prefix companion assets are served
	// under. Must start and end with "/".
	AssetRoot string

	// AssetsDir is the local directory served under AssetRoot
	AssetsDir string

	// ScreensFile is the path to the screens manifest. Empty means the
	// built-in screens.
	ScreensFile string

	// DocumentCacheTTL is how long acquired design documents stay cached,
	// in seconds
	DocumentCacheTTL int
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int

	// Window is the rate limit window in seconds
	Window int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string

	// Format selects the log output format (json/text)
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "designmount.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
				CleanupInterval:   getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
		},
		Engine: EngineConfig{
			AssetRoot:        getEnvOrDefault("ASSET_ROOT", "/assets/"),
			AssetsDir:        getEnvOrDefault("ASSETS_DIR", "assets/design"),
			ScreensFile:      getEnvOrDefault("SCREENS_FILE", ""),
			DocumentCacheTTL: getEnvAsIntOrDefault("DOCUMENT_CACHE_TTL", 3600),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window:   getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if !strings.HasPrefix(c.Engine.AssetRoot, "/") || !strings.HasSuffix(c.Engine.AssetRoot, "/") {
		return errors.New("asset root must start and end with '/'")
	}

	if c.Engine.DocumentCacheTTL < 1 {
		return errors.New("document cache TTL must be at least 1 second")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit must allow at least 1 request")
	}

	if c.RateLimit.Window < 1 {
		return errors.New("rate limit window must be at least 1 second")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
