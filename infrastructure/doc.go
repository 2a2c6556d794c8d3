// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-backed cache
// - storage/sqlite: Users, API keys, projects and an optional cache table
// - http/standard: HTTP client used for relay calls
// - ai/openai: Generator for OpenAI-compatible chat completion endpoints
// - ai/relay: Generator that posts prompts to a backend relay
// - logger/structured: logrus logger with optional lumberjack rotation
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Logger
//
//	logger := structured.New(structured.Config{Level: "info"})
//	logger.Info("Conversion completed", map[string]interface{}{
//	    "project_id": id,
//	    "relay":      "corsproxy",
//	})
package infrastructure
