// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the server, cache, storage, relays and the model backend

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistence configuration
	Storage StorageConfig

	// Fetch contains relay fetching configuration
	Fetch FetchConfig

	// Generation contains model backend configuration
	Generation GenerationConfig

	// Conversion contains pipeline tuning
	Conversion ConversionConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per RateWindow per client IP
	RateLimit int

	// RateWindow is the rate limiting window
	RateWindow time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are swept
	CleanupInterval time.Duration
}

// StorageConfig holds the SQLite database location
type StorageConfig struct {
	DatabasePath string
}

// RelayConfig describes one CORS relay endpoint.
// Template must contain {url}; {ts} is replaced with a cache buster.
type RelayConfig struct {
	Name     string
	Mode     string
	Template string
}

// FetchConfig holds relay fetching configuration
type FetchConfig struct {
	Relays       []RelayConfig
	MinLength    int
	RelayTimeout time.Duration

	// Direct appends a direct (non-relay) fetch as the last strategy
	Direct bool

	// UserAgent replaces the relay client's User-Agent when set
	UserAgent string
}

// GenerationConfig holds the model backend configuration
type GenerationConfig struct {
	// Provider is openai (any OpenAI-compatible endpoint) or relay
	Provider        string
	APIKey          string
	BaseURL         string
	Model           string
	RelayURL        string
	Temperature     float64
	ReasoningEffort string
	Timeout         time.Duration
}

// ConversionConfig holds pipeline tuning
type ConversionConfig struct {
	MaxSourceChars int
	PacingDelay    time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
	File  string
}

// DefaultRelays is the relay chain used when FETCH_RELAYS is not set
var DefaultRelays = []RelayConfig{
	{Name: "corsproxy", Mode: "text", Template: "https://corsproxy.io/?url={url}"},
	{Name: "allorigins", Mode: "json", Template: "https://api.allorigins.win/get?url={url}&_ts={ts}"},
	{Name: "codetabs", Mode: "text", Template: "https://api.codetabs.com/v1/proxy?quest={url}"},
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	relays := DefaultRelays
	if raw := os.Getenv("FETCH_RELAYS"); raw != "" {
		parsed, err := ParseRelays(raw)
		if err != nil {
			return nil, err
		}
		relays = parsed
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "3000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 60),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsDurationOrDefault("MEMORY_CACHE_CLEANUP", 10*time.Minute),
			},
		},
		Storage: StorageConfig{
			DatabasePath: getEnvOrDefault("DATABASE_PATH", "database/web2one.sqlite"),
		},
		Fetch: FetchConfig{
			Relays:       relays,
			MinLength:    getEnvAsIntOrDefault("FETCH_MIN_LENGTH", 300),
			RelayTimeout: getEnvAsDurationOrDefault("FETCH_RELAY_TIMEOUT", 20*time.Second),
			Direct:       getEnvAsBoolOrDefault("FETCH_DIRECT", false),
			UserAgent:    getEnvOrDefault("FETCH_USER_AGENT", ""),
		},
		Generation: GenerationConfig{
			Provider:        getEnvOrDefault("GENERATION_PROVIDER", "openai"),
			APIKey:          getEnvOrDefault("GENERATION_API_KEY", ""),
			BaseURL:         getEnvOrDefault("GENERATION_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
			Model:           getEnvOrDefault("GENERATION_MODEL", "gemini-2.5-pro"),
			RelayURL:        getEnvOrDefault("GENERATION_RELAY_URL", ""),
			Temperature:     getEnvAsFloatOrDefault("GENERATION_TEMPERATURE", 0.1),
			ReasoningEffort: getEnvOrDefault("GENERATION_REASONING_EFFORT", "low"),
			Timeout:         getEnvAsDurationOrDefault("GENERATION_TIMEOUT", 90*time.Second),
		},
		Conversion: ConversionConfig{
			MaxSourceChars: getEnvAsIntOrDefault("MAX_SOURCE_CHARS", 150000),
			PacingDelay:    getEnvAsDurationOrDefault("CONVERSION_PACING_DELAY", 800*time.Millisecond),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// ParseRelays parses "name|mode|template;name|mode|template"
func ParseRelays(raw string) ([]RelayConfig, error) {
	var relays []RelayConfig
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, "|", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid relay %q: want name|mode|template", part)
		}
		relays = append(relays, RelayConfig{
			Name:     strings.TrimSpace(fields[0]),
			Mode:     strings.ToLower(strings.TrimSpace(fields[1])),
			Template: strings.TrimSpace(fields[2]),
		})
	}
	if len(relays) == 0 {
		return nil, errors.New("FETCH_RELAYS does not contain any relay")
	}
	return relays, nil
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

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("20s") or whole milliseconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
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

	if c.Storage.DatabasePath == "" {
		return errors.New("database path cannot be empty")
	}

	if len(c.Fetch.Relays) == 0 && !c.Fetch.Direct {
		return errors.New("at least one fetch relay is required")
	}

	for _, r := range c.Fetch.Relays {
		if r.Mode != "text" && r.Mode != "json" {
			return fmt.Errorf("relay %s: mode must be 'text' or 'json'", r.Name)
		}
		if !strings.Contains(r.Template, "{url}") {
			return fmt.Errorf("relay %s: template must contain {url}", r.Name)
		}
	}

	if c.Fetch.MinLength < 0 {
		return errors.New("fetch min length cannot be negative")
	}

	switch c.Generation.Provider {
	case "openai":
		if c.Generation.APIKey == "" {
			return errors.New("generation api key cannot be empty when using openai provider")
		}
		if c.Generation.Model == "" {
			return errors.New("generation model cannot be empty")
		}
	case "relay":
		if c.Generation.RelayURL == "" {
			return errors.New("generation relay url cannot be empty when using relay provider")
		}
	default:
		return errors.New("generation provider must be 'openai' or 'relay'")
	}

	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return errors.New("generation temperature must be between 0 and 2")
	}

	if c.Conversion.MaxSourceChars < 1 {
		return errors.New("max source chars must be positive")
	}

	return nil
}
