package metrics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGWriter bulk-loads batches with COPY into the tables created by the repository schema.
type PGWriter struct {
	pool *pgxpool.Pool
}

func NewPGWriter(pool *pgxpool.Pool) *PGWriter {
	return &PGWriter{pool: pool}
}

func (w *PGWriter) WriteHTTP(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}
	return w.copy(ctx, "http_metrics",
		[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"}, rows)
}

func (w *PGWriter) WriteBusiness(ctx context.Context, batch []BusinessMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		labelsJSON, err := json.Marshal(m.Labels)
		if err != nil {
			return fmt.Errorf("failed to encode labels: %w", err)
		}
		rows[i] = []any{m.Time, m.MetricName, m.Value, labelsJSON}
	}
	return w.copy(ctx, "business_metrics", []string{"time", "metric_name", "value", "labels"}, rows)
}

func (w *PGWriter) WriteInfra(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{
			m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
		}
	}
	return w.copy(ctx, "infra_metrics", []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
	}, rows)
}

func (w *PGWriter) copy(ctx context.Context, table string, columns []string, rows [][]any) error {
	if _, err := w.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("failed to copy into %s: %w", table, err)
	}
	return nil
}

// NopWriter discards batches; used when the recorder is disabled.
type NopWriter struct{}

func (NopWriter) WriteHTTP(context.Context, []HTTPMetric) error         { return nil }
func (NopWriter) WriteBusiness(context.Context, []BusinessMetric) error { return nil }
func (NopWriter) WriteInfra(context.Context, []InfraMetric) error       { return nil }
