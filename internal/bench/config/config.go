package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	TypeCreate   = "create"
	TypeRedirect = "redirect"
	TypeStats    = "stats"
	TypeMixed    = "mixed"
)

type Config struct {
	TargetURL          string        `env:"BENCH_TARGET_URL" envDefault:"http://localhost:8080"`
	SeedCount          int           `env:"BENCH_SEED_COUNT" envDefault:"10000"`
	SeedWorkers        int           `env:"BENCH_SEED_WORKERS" envDefault:"0"`
	SeedValidity       int           `env:"BENCH_SEED_VALIDITY_MINUTES" envDefault:"1440"`
	SeedTimeout        time.Duration `env:"BENCH_SEED_TIMEOUT" envDefault:"30s"`
	Rate               int           `env:"BENCH_RATE" envDefault:"1000"`
	Duration           time.Duration `env:"BENCH_DURATION" envDefault:"30s"`
	CreateRatio        float64       `env:"BENCH_CREATE_RATIO" envDefault:"0.1"`
	StatsRatio         float64       `env:"BENCH_STATS_RATIO" envDefault:"0.1"`
	Type               string        `env:"BENCH_TYPE" envDefault:"mixed"`
	Connections        int           `env:"BENCH_CONNECTIONS" envDefault:"10000"`
	MaxWorkers         uint64        `env:"BENCH_MAX_WORKERS" envDefault:"0"`
	InsecureSkipVerify bool          `env:"BENCH_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	switch cfg.Type {
	case TypeCreate, TypeRedirect, TypeStats, TypeMixed:
	default:
		return nil, fmt.Errorf("unknown bench type %q", cfg.Type)
	}
	if cfg.CreateRatio+cfg.StatsRatio > 1 {
		return nil, fmt.Errorf("create ratio %.2f plus stats ratio %.2f exceeds 1", cfg.CreateRatio, cfg.StatsRatio)
	}
	return &cfg, nil
}

// NeedsSeed reports whether the attack reads existing shortcodes.
func (c *Config) NeedsSeed() bool {
	return c.Type != TypeCreate
}
