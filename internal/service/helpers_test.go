package service_test

import (
	"sync"
	"time"

	"shortlink/internal/eventlog"
	"shortlink/internal/repository"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
)

type emitted struct {
	Level   eventlog.Level
	Package string
	Message string
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []emitted
}

func (e *recordingEmitter) Emit(level eventlog.Level, pkg, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, emitted{level, pkg, message})
}

func (e *recordingEmitter) last() emitted {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.events) == 0 {
		return emitted{}
	}
	return e.events[len(e.events)-1]
}

type nopRecorder struct{}

func (nopRecorder) RecordBusiness(string, float64, map[string]string) {}

type mapCache struct {
	mu sync.Mutex
	m  map[string]time.Time
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[string]time.Time)}
}

func (c *mapCache) Get(shortcode string) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[shortcode]
	return v, ok
}

func (c *mapCache) Set(shortcode string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[shortcode] = expiresAt
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testConfig = service.Config{
	DefaultValidityMinutes: 30,
	MaxValidityMinutes:     60 * 24 * 365,
	Reserved:               []string{"shorten", "stats", "login", "shorturls", "api"},
}

type fixture struct {
	svc    *service.LinkService
	repo   *repository.MemoryRepository
	events *recordingEmitter
	clock  *fakeClock
}

func newFixture() *fixture {
	f := &fixture{
		repo:   repository.NewMemoryRepository(),
		events: &recordingEmitter{},
		clock:  newFakeClock(),
	}
	f.svc = service.NewLinkService(f.repo, shortener.New(), newMapCache(), f.events, nopRecorder{},
		testConfig, service.WithClock(f.clock.Now))
	return f
}

func intPtr(v int) *int { return &v }
