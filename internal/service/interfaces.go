package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/eventlog"
)

type Repository interface {
	Create(ctx context.Context, rec *domain.LinkRecord) error
	Resolve(ctx context.Context, shortcode string, click domain.ClickEvent) (*domain.LinkRecord, error)
	Stats(ctx context.Context, shortcode string) (*domain.StatsView, error)
}

type Cache interface {
	Get(shortcode string) (time.Time, bool)
	Set(shortcode string, expiresAt time.Time)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type EventEmitter interface {
	Emit(level eventlog.Level, pkg, message string)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
