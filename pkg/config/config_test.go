package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Server:  ServerConfig{Port: "3000"},
		Cache:   CacheConfig{Type: "memory"},
		Storage: StorageConfig{DatabasePath: "test.sqlite"},
		Fetch: FetchConfig{
			Relays:    DefaultRelays,
			MinLength: 300,
		},
		Generation: GenerationConfig{
			Provider:    "openai",
			APIKey:      "key",
			Model:       "gemini-2.5-pro",
			Temperature: 0.1,
		},
		Conversion: ConversionConfig{MaxSourceChars: 150000},
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Port = %v, want 3000", cfg.Server.Port)
	}
	if cfg.Fetch.MinLength != 300 {
		t.Errorf("MinLength = %v, want 300", cfg.Fetch.MinLength)
	}
	if cfg.Fetch.RelayTimeout != 20*time.Second {
		t.Errorf("RelayTimeout = %v, want 20s", cfg.Fetch.RelayTimeout)
	}
	if len(cfg.Fetch.Relays) != 3 {
		t.Fatalf("Relays = %d, want 3", len(cfg.Fetch.Relays))
	}
	if cfg.Fetch.Relays[1].Mode != "json" {
		t.Errorf("second relay mode = %v, want json", cfg.Fetch.Relays[1].Mode)
	}
	if cfg.Conversion.MaxSourceChars != 150000 {
		t.Errorf("MaxSourceChars = %v, want 150000", cfg.Conversion.MaxSourceChars)
	}
	if cfg.Conversion.PacingDelay != 800*time.Millisecond {
		t.Errorf("PacingDelay = %v, want 800ms", cfg.Conversion.PacingDelay)
	}
	if cfg.Generation.Temperature != 0.1 {
		t.Errorf("Temperature = %v, want 0.1", cfg.Generation.Temperature)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "port",
			env:  map[string]string{"PORT": "8080"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != "8080" {
					t.Errorf("Port = %v", cfg.Server.Port)
				}
			},
		},
		{
			name: "duration as go duration",
			env:  map[string]string{"GENERATION_TIMEOUT": "45s"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Generation.Timeout != 45*time.Second {
					t.Errorf("Timeout = %v", cfg.Generation.Timeout)
				}
			},
		},
		{
			name: "duration as milliseconds",
			env:  map[string]string{"CONVERSION_PACING_DELAY": "0"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Conversion.PacingDelay != 0 {
					t.Errorf("PacingDelay = %v", cfg.Conversion.PacingDelay)
				}
			},
		},
		{
			name: "invalid int falls back",
			env:  map[string]string{"FETCH_MIN_LENGTH": "lots"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Fetch.MinLength != 300 {
					t.Errorf("MinLength = %v", cfg.Fetch.MinLength)
				}
			},
		},
		{
			name: "bool and float",
			env:  map[string]string{"FETCH_DIRECT": "true", "GENERATION_TEMPERATURE": "0.2"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Fetch.Direct {
					t.Error("Direct should be true")
				}
				if cfg.Generation.Temperature != 0.2 {
					t.Errorf("Temperature = %v", cfg.Generation.Temperature)
				}
			},
		},
		{
			name: "user agent",
			env:  map[string]string{"FETCH_USER_AGENT": "AcmeBot/1.0"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Fetch.UserAgent != "AcmeBot/1.0" {
					t.Errorf("UserAgent = %v", cfg.Fetch.UserAgent)
				}
			},
		},
		{
			name: "custom relays",
			env:  map[string]string{"FETCH_RELAYS": "local|text|http://localhost:9000/?u={url}"},
			check: func(t *testing.T, cfg *Config) {
				if len(cfg.Fetch.Relays) != 1 || cfg.Fetch.Relays[0].Name != "local" {
					t.Errorf("Relays = %+v", cfg.Fetch.Relays)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromEnv_InvalidRelays(t *testing.T) {
	os.Clearenv()
	os.Setenv("FETCH_RELAYS", "broken")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() should reject malformed FETCH_RELAYS")
	}
}

func TestParseRelays(t *testing.T) {
	relays, err := ParseRelays(" a|TEXT|http://a/?u={url} ; b|json|http://b/?u={url}&t={ts};")
	if err != nil {
		t.Fatalf("ParseRelays() error = %v", err)
	}
	if len(relays) != 2 {
		t.Fatalf("len = %d, want 2", len(relays))
	}
	if relays[0].Mode != "text" || relays[1].Name != "b" {
		t.Errorf("relays = %+v", relays)
	}

	if _, err := ParseRelays(" ; "); err == nil {
		t.Error("ParseRelays() should fail on an empty list")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "empty port",
			mutate: func(c *Config) { c.Server.Port = "" },
			errMsg: "port cannot be empty",
		},
		{
			name:   "invalid cache type",
			mutate: func(c *Config) { c.Cache.Type = "invalid" },
			errMsg: "cache type must be 'memory', 'redis' or 'sqlite'",
		},
		{
			name: "redis type with empty address",
			mutate: func(c *Config) {
				c.Cache.Type = "redis"
				c.Cache.Redis.Address = ""
			},
			errMsg: "redis address cannot be empty when using redis cache",
		},
		{
			name:   "no relays",
			mutate: func(c *Config) { c.Fetch.Relays = nil },
			errMsg: "at least one fetch relay is required",
		},
		{
			name: "bad relay mode",
			mutate: func(c *Config) {
				c.Fetch.Relays = []RelayConfig{{Name: "x", Mode: "xml", Template: "http://x/{url}"}}
			},
			errMsg: "relay x: mode must be 'text' or 'json'",
		},
		{
			name: "relay template without placeholder",
			mutate: func(c *Config) {
				c.Fetch.Relays = []RelayConfig{{Name: "x", Mode: "text", Template: "http://x/"}}
			},
			errMsg: "relay x: template must contain {url}",
		},
		{
			name:   "openai without key",
			mutate: func(c *Config) { c.Generation.APIKey = "" },
			errMsg: "generation api key cannot be empty when using openai provider",
		},
		{
			name:   "relay provider without url",
			mutate: func(c *Config) { c.Generation.Provider = "relay" },
			errMsg: "generation relay url cannot be empty when using relay provider",
		},
		{
			name:   "unknown provider",
			mutate: func(c *Config) { c.Generation.Provider = "carrier-pigeon" },
			errMsg: "generation provider must be 'openai' or 'relay'",
		},
		{
			name:   "temperature out of range",
			mutate: func(c *Config) { c.Generation.Temperature = 3 },
			errMsg: "generation temperature must be between 0 and 2",
		},
		{
			name:   "zero source budget",
			mutate: func(c *Config) { c.Conversion.MaxSourceChars = 0 },
			errMsg: "max source chars must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}
