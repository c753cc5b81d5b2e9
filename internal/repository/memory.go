package repository

import (
	"context"
	"slices"
	"sync"

	"shortlink/internal/domain"
)

// MemoryRepository keeps every record in one map for the life of the process.
type MemoryRepository struct {
	mu    sync.RWMutex
	links map[string]*domain.LinkRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{links: make(map[string]*domain.LinkRecord)}
}

func (r *MemoryRepository) Create(_ context.Context, rec *domain.LinkRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[rec.Shortcode]; ok {
		return ErrDuplicate
	}
	stored := *rec
	stored.ClickCount = 0
	stored.ClickLog = nil
	r.links[rec.Shortcode] = &stored
	return nil
}

// Resolve records click against the link unless it has expired at click.Timestamp.
// The returned record is a copy without the click log. It is also returned
// alongside ErrExpired so callers can learn the expiry.
func (r *MemoryRepository) Resolve(_ context.Context, shortcode string, click domain.ClickEvent) (*domain.LinkRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.links[shortcode]
	if !ok {
		return nil, ErrNotFound
	}
	if rec.Expired(click.Timestamp) {
		return &domain.LinkRecord{Shortcode: rec.Shortcode, ExpiresAt: rec.ExpiresAt}, ErrExpired
	}

	rec.ClickCount++
	rec.ClickLog = append(rec.ClickLog, click)

	return &domain.LinkRecord{
		Shortcode:  rec.Shortcode,
		LongURL:    rec.LongURL,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
		ClickCount: rec.ClickCount,
	}, nil
}

func (r *MemoryRepository) Stats(_ context.Context, shortcode string) (*domain.StatsView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.links[shortcode]
	if !ok {
		return nil, ErrNotFound
	}
	log := slices.Clone(rec.ClickLog)
	if log == nil {
		log = []domain.ClickEvent{}
	}
	return &domain.StatsView{
		Shortcode:  rec.Shortcode,
		LongURL:    rec.LongURL,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
		ClickCount: rec.ClickCount,
		ClickLog:   log,
	}, nil
}

func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.links)
}

func (r *MemoryRepository) Close() {}
