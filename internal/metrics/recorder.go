package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shortlink/internal/config"
)

// drainTimeout bounds the final write of each stream on shutdown.
const drainTimeout = 5 * time.Second

// Recorder batches metrics in memory and hands them to a Writer from one
// goroutine per metric kind. Record calls never block; a full buffer drops.
type Recorder struct {
	logger  *slog.Logger
	enabled bool

	http     *stream[HTTPMetric]
	business *stream[BusinessMetric]
	infra    *stream[InfraMetric]

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRecorder(w Writer, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	opts := streamOptions{
		size:      max(1, cfg.BufferSize),
		threshold: max(1, cfg.FlushThreshold),
		interval:  max(time.Millisecond, time.Duration(cfg.FlushInterval)*time.Millisecond),
		logger:    logger,
	}
	return &Recorder{
		logger:   logger,
		enabled:  cfg.Enabled,
		http:     newStream("http", opts, w.WriteHTTP),
		business: newStream("business", opts, w.WriteBusiness),
		infra:    newStream("infra", opts, w.WriteInfra),
		stop:     make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if r.enabled {
		r.http.offer(m)
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.enabled {
		return
	}
	r.business.offer(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if r.enabled {
		r.infra.offer(m)
	}
}

// Start launches the flush loops. It is a no-op when recording is disabled.
func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	// Requests finishing during graceful shutdown still record, so only Close
	// ends the loops.
	ctx = context.WithoutCancel(ctx)
	for _, loop := range []func(context.Context, <-chan struct{}){
		r.http.loop, r.business.loop, r.infra.loop,
	} {
		r.wg.Go(func() { loop(ctx, r.stop) })
	}

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", cap(r.http.ch)),
		slog.Duration("flush_interval", r.http.interval))
}

// Close stops the loops after they write whatever is still buffered.
func (r *Recorder) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()
}

type streamOptions struct {
	size      int
	threshold int
	interval  time.Duration
	logger    *slog.Logger
}

type stream[T any] struct {
	streamOptions
	kind  string
	ch    chan T
	write func(context.Context, []T) error
}

func newStream[T any](kind string, opts streamOptions, write func(context.Context, []T) error) *stream[T] {
	return &stream[T]{streamOptions: opts, kind: kind, ch: make(chan T, opts.size), write: write}
}

func (s *stream[T]) offer(m T) {
	select {
	case s.ch <- m:
	default:
		s.logger.Warn("metrics buffer full, dropping metric", slog.String("kind", s.kind))
	}
}

func (s *stream[T]) loop(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	pending := make([]T, 0, s.threshold)
	send := func(ctx context.Context) {
		if len(pending) == 0 {
			return
		}
		if err := s.write(ctx, pending); err != nil {
			s.logger.Error("failed to write metrics batch",
				slog.String("kind", s.kind),
				slog.Int("size", len(pending)),
				slog.String("error", err.Error()))
		}
		pending = pending[:0]
	}

	for {
		select {
		case m := <-s.ch:
			pending = append(pending, m)
			if len(pending) >= s.threshold {
				send(ctx)
			}
		case <-ticker.C:
			send(ctx)
		case <-stop:
			s.finish(&pending, send)
			return
		}
	}
}

// finish moves everything still queued into pending and writes it under
// drainTimeout.
func (s *stream[T]) finish(pending *[]T, send func(context.Context)) {
	for {
		select {
		case m := <-s.ch:
			*pending = append(*pending, m)
		default:
			ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			defer cancel()
			send(ctx)
			return
		}
	}
}
