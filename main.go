package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/eventlog"
	"shortlink/internal/handler"
	"shortlink/internal/metrics"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/repository"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type linkStore interface {
	service.Repository
	Close()
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var pg *repository.PostgresRepository
	if cfg.Store.Backend == config.BackendPostgres || cfg.Metrics.Enabled {
		var err error
		pg, err = repository.NewPostgresRepository(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer pg.Close()
	}

	var store linkStore = repository.NewMemoryRepository()
	if cfg.Store.Backend == config.BackendPostgres {
		store = pg
	}
	logger.Info("link store ready", slog.String("backend", cfg.Store.Backend))

	expiryCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer expiryCache.Close()

	events := eventlog.NewClient(&cfg.LogSink, logger)
	events.Start(ctx)
	defer events.Close()

	var writer metrics.Writer = metrics.NopWriter{}
	if cfg.Metrics.Enabled {
		writer = metrics.NewPGWriter(pg.Pool())
	}
	recorder := metrics.NewRecorder(writer, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	if cfg.Metrics.Enabled {
		go collectInfraMetrics(ctx, recorder, pg, expiryCache)
	}

	links := service.NewLinkService(store, shortener.New(), expiryCache, events, recorder, service.Config{
		DefaultValidityMinutes: cfg.App.DefaultValidityMinutes,
		MaxValidityMinutes:     cfg.App.MaxValidityMinutes,
		Reserved:               handler.ReservedPaths,
	})
	h := handler.New(links, service.NewLoginService(events), logger, handler.Config{BaseURL: cfg.App.BaseURL})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.MaxRequestBodySize))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(custommiddleware.RequestLog(logger))
	e.Use(custommiddleware.Metrics(recorder))

	h.Register(e)

	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e, cfg.Pprof.Secret)
		logger.Info("pprof endpoints enabled", slog.String("path", custommiddleware.PprofPrefix+"/*"))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	useTLS := cfg.Server.TLSCertFile != "" && cfg.Server.TLSKeyFile != ""
	if useTLS {
		cert, err := tls.LoadX509KeyPair(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		if err != nil {
			_ = listener.Close()
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}
		listener = tls.NewListener(listener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			slog.String("addr", addr),
			slog.Bool("tls", useTLS),
			slog.Int("max_connections", cfg.Server.MaxConnections))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, pg *repository.PostgresRepository, expiryCache *cache.ExpiryCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			acquired, idle, total, maxConns := pg.Stat()
			cs := expiryCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  acquired,
				PoolIdle:      idle,
				PoolTotal:     total,
				PoolMax:       maxConns,
				CacheHits:     int64(cs.Hits),
				CacheMisses:   int64(cs.Misses),
				CacheHitRatio: cs.Ratio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
