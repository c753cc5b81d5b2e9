package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shortlink/internal/bench/attack"
	"shortlink/internal/bench/config"
	"shortlink/internal/bench/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var codes []string
	if cfg.NeedsSeed() {
		codes, err = seed.Run(ctx, seed.Options{
			TargetURL:          cfg.TargetURL,
			Count:              cfg.SeedCount,
			Workers:            cfg.SeedWorkers,
			ValidityMinutes:    cfg.SeedValidity,
			Timeout:            cfg.SeedTimeout,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		TargetURL:          cfg.TargetURL,
		Codes:              codes,
		Type:               cfg.Type,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		StatsRatio:         cfg.StatsRatio,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}, os.Stdout)
}
