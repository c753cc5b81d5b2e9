package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

func (r *PostgresRepository) Create(ctx context.Context, rec *domain.LinkRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO links (shortcode, long_url, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		rec.Shortcode, rec.LongURL, rec.CreatedAt, rec.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Resolve(ctx context.Context, shortcode string, click domain.ClickEvent) (*domain.LinkRecord, error) {
	var rec domain.LinkRecord
	var resolveErr error

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`UPDATE links SET click_count = click_count + 1
			 WHERE shortcode = $1 AND expires_at > $2
			 RETURNING shortcode, long_url, created_at, expires_at, click_count`,
			shortcode, click.Timestamp,
		).Scan(&rec.Shortcode, &rec.LongURL, &rec.CreatedAt, &rec.ExpiresAt, &rec.ClickCount)
		if errors.Is(err, pgx.ErrNoRows) {
			resolveErr = r.classifyMiss(ctx, tx, shortcode, &rec)
			if errors.Is(resolveErr, ErrNotFound) || errors.Is(resolveErr, ErrExpired) {
				return nil
			}
			return resolveErr
		}
		if err != nil {
			return fmt.Errorf("failed to count click: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO clicks (shortcode, clicked_at, referrer, geolocation) VALUES ($1, $2, $3, $4)`,
			shortcode, click.Timestamp, click.Referrer, click.Geolocation,
		)
		if err != nil {
			return fmt.Errorf("failed to insert click: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if errors.Is(resolveErr, ErrNotFound) {
		return nil, resolveErr
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.ExpiresAt = rec.ExpiresAt.UTC()
	return &rec, resolveErr
}

// classifyMiss tells an unknown shortcode from an expired one after the guarded update matched nothing.
func (r *PostgresRepository) classifyMiss(ctx context.Context, tx pgx.Tx, shortcode string, rec *domain.LinkRecord) error {
	err := tx.QueryRow(ctx,
		`SELECT shortcode, expires_at FROM links WHERE shortcode = $1`, shortcode,
	).Scan(&rec.Shortcode, &rec.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up link: %w", err)
	}
	return ErrExpired
}

func (r *PostgresRepository) Stats(ctx context.Context, shortcode string) (*domain.StatsView, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin stats transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var view domain.StatsView
	err = tx.QueryRow(ctx,
		`SELECT shortcode, long_url, created_at, expires_at, click_count FROM links WHERE shortcode = $1`,
		shortcode,
	).Scan(&view.Shortcode, &view.LongURL, &view.CreatedAt, &view.ExpiresAt, &view.ClickCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT clicked_at, referrer, geolocation FROM clicks WHERE shortcode = $1 ORDER BY id`,
		shortcode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}
	view.ClickLog, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClickEvent, error) {
		var ev domain.ClickEvent
		err := row.Scan(&ev.Timestamp, &ev.Referrer, &ev.Geolocation)
		return ev, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clicks: %w", err)
	}
	if view.ClickLog == nil {
		view.ClickLog = []domain.ClickEvent{}
	}

	view.CreatedAt = view.CreatedAt.UTC()
	view.ExpiresAt = view.ExpiresAt.UTC()
	for i := range view.ClickLog {
		view.ClickLog[i].Timestamp = view.ClickLog[i].Timestamp.UTC()
	}
	return &view, nil
}

// Stat exposes pool counters for infra metrics.
func (r *PostgresRepository) Stat() (acquired, idle, total, maxConns int) {
	s := r.pool.Stat()
	return int(s.AcquiredConns()), int(s.IdleConns()), int(s.TotalConns()), int(s.MaxConns())
}
