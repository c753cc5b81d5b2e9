package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is the wire record accepted by the log collector.
type Event struct {
	Stack     string `json:"stack"`
	Level     Level  `json:"level"`
	Package   string `json:"package"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Client ships events to the remote collector from background workers.
// Emit never blocks and never fails the caller.
type Client struct {
	cfg        *config.LogSinkConfig
	logger     *slog.Logger
	httpClient *http.Client
	events     chan Event
	now        func() time.Time

	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewClient(cfg *config.LogSinkConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		events:     make(chan Event, max(1, cfg.BufferSize)),
		now:        time.Now,
		shutdownCh: make(chan struct{}),
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.URL != ""
}

func (c *Client) Emit(level Level, pkg, message string) {
	if !c.Enabled() {
		c.logger.Debug("log sink disabled, event kept local",
			slog.String("level", string(level)),
			slog.String("package", pkg),
			slog.String("message", message))
		return
	}

	ev := Event{
		Stack:     c.cfg.Stack,
		Level:     level,
		Package:   pkg,
		Message:   message,
		Timestamp: domain.FormatTime(c.now()),
	}
	select {
	case c.events <- ev:
	default:
		c.logger.Warn("log sink buffer full, dropping event",
			slog.String("package", pkg),
			slog.String("message", message))
	}
}

func (c *Client) Start(ctx context.Context) {
	if !c.Enabled() {
		c.logger.Info("log sink disabled")
		return
	}

	// Requests still in flight during graceful shutdown keep emitting after the
	// signal context ends, so only Close stops the workers.
	ctx = context.WithoutCancel(ctx)

	c.startOnce.Do(func() {
		workers := max(1, c.cfg.Workers)
		c.wg.Add(workers)
		for range workers {
			go c.worker(ctx)
		}
		c.logger.Info("log sink started",
			slog.String("url", c.cfg.URL),
			slog.Int("workers", workers),
			slog.Int("buffer_size", cap(c.events)))
	})
}

// Close stops the workers after they deliver whatever is still queued.
func (c *Client) Close() {
	c.shutdownOnce.Do(func() {
		close(c.shutdownCh)
		c.wg.Wait()
	})
}

func (c *Client) worker(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-c.shutdownCh:
			c.drain()
			return
		case ev := <-c.events:
			c.send(ctx, ev)
		}
	}
}

func (c *Client) drain() {
	for {
		select {
		case ev := <-c.events:
			c.send(context.Background(), ev)
		default:
			return
		}
	}
}

func (c *Client) send(ctx context.Context, ev Event) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.post(ctx, ev); err != nil {
		c.logger.Warn("failed to ship log event",
			slog.String("package", ev.Package),
			slog.String("message", ev.Message),
			slog.String("error", err.Error()))
		return
	}
	c.logger.Debug("log event shipped", slog.String("message", ev.Message))
}

func (c *Client) post(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("collector returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
