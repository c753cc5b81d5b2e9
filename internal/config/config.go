package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Cache size bounds, as powers of two of the ristretto cost budget.
const (
	MinCacheSizePow2 = 10
	MaxCacheSizePow2 = 40
)

var (
	ErrUnknownBackend       = errors.New("unknown store backend")
	ErrMetricsNeedsDatabase = errors.New("metrics require DATABASE_URL")
	ErrInvalidValidity      = errors.New("default validity must be positive and not exceed max validity")
	ErrInvalidCacheSize     = fmt.Errorf("CACHE_MAX_SIZE_POW2 must be within %d..%d", MinCacheSizePow2, MaxCacheSizePow2)
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Cache    CacheConfig
	LogSink  LogSinkConfig
	Metrics  MetricsConfig
	Pprof    PprofConfig
}

type ServerConfig struct {
	Host               string `env:"SERVER_HOST" envDefault:"localhost"`
	Port               int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections     int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string `env:"SERVER_MAX_BODY_SIZE" envDefault:"16K"`
	TLSCertFile        string `env:"TLS_CERT_FILE"`
	TLSKeyFile         string `env:"TLS_KEY_FILE"`
}

type AppConfig struct {
	// BaseURL prefixes returned shortlinks. Empty means derive it from the request host.
	BaseURL                string `env:"BASE_URL"`
	DefaultValidityMinutes int    `env:"DEFAULT_VALIDITY_MINUTES" envDefault:"30"`
	MaxValidityMinutes     int    `env:"MAX_VALIDITY_MINUTES" envDefault:"525600"`
	LogLevel               string `env:"LOG_LEVEL" envDefault:"info"`
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
}

type LogSinkConfig struct {
	URL        string        `env:"LOG_SINK_URL"`
	Token      string        `env:"LOG_SINK_TOKEN"`
	Stack      string        `env:"LOG_SINK_STACK" envDefault:"backend"`
	Timeout    time.Duration `env:"LOG_SINK_TIMEOUT" envDefault:"2s"`
	BufferSize int           `env:"LOG_SINK_BUFFER_SIZE" envDefault:"1024"`
	Workers    int           `env:"LOG_SINK_WORKERS" envDefault:"2"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"500"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("%s backend requires DATABASE_URL", BackendPostgres)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Store.Backend)
	}

	if c.Metrics.Enabled && c.Database.URL == "" {
		return ErrMetricsNeedsDatabase
	}

	if c.App.DefaultValidityMinutes <= 0 || c.App.DefaultValidityMinutes > c.App.MaxValidityMinutes {
		return ErrInvalidValidity
	}

	if c.Cache.MaxSizePow2 < MinCacheSizePow2 || c.Cache.MaxSizePow2 > MaxCacheSizePow2 {
		return ErrInvalidCacheSize
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, falling back to info.
func (c *AppConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
