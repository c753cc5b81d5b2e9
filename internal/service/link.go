package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/eventlog"
	"shortlink/internal/repository"
	"shortlink/internal/shortener"
)

// Event package names reported to the log collector.
const (
	PackageShortURLs = "shorturls"
	PackageRedirect  = "redirect"
	PackageStats     = "stats"
	PackageLogin     = "login"
)

// maxGenerateAttempts bounds the rejection loop for generated codes. With 62^6
// codes the chance of needing it is negligible at any realistic store size.
const maxGenerateAttempts = 16

type Config struct {
	DefaultValidityMinutes int
	MaxValidityMinutes     int
	// Reserved lists words that clash with fixed routes and can never be shortcodes.
	Reserved []string
}

type CreateParams struct {
	URL string
	// Validity in minutes; nil means the configured default.
	Validity *int
	// Shortcode requested by the caller; empty means generate one.
	Shortcode string
}

type CreateResult struct {
	Shortcode string
	ExpiresAt time.Time
}

type LinkService struct {
	repo            Repository
	generator       CodeGenerator
	cache           Cache
	events          EventEmitter
	recorder        BusinessRecorder
	defaultValidity int
	maxValidity     int
	reserved        map[string]struct{}
	now             func() time.Time
}

type Option func(*LinkService)

// WithClock replaces the wall clock used for creation, expiry and click times.
func WithClock(now func() time.Time) Option {
	return func(s *LinkService) { s.now = now }
}

func NewLinkService(
	repo Repository,
	generator CodeGenerator,
	cache Cache,
	events EventEmitter,
	recorder BusinessRecorder,
	cfg Config,
	opts ...Option,
) *LinkService {
	reserved := make(map[string]struct{}, len(cfg.Reserved))
	for _, word := range cfg.Reserved {
		reserved[word] = struct{}{}
	}

	s := &LinkService{
		repo:            repo,
		generator:       generator,
		cache:           cache,
		events:          events,
		recorder:        recorder,
		defaultValidity: cfg.DefaultValidityMinutes,
		maxValidity:     cfg.MaxValidityMinutes,
		reserved:        reserved,
		now:             func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LinkService) Create(ctx context.Context, p CreateParams) (*CreateResult, error) {
	if strings.TrimSpace(p.URL) == "" {
		s.events.Emit(eventlog.LevelError, PackageShortURLs, "Missing 'url' field in request body.")
		return nil, ErrMissingURL
	}

	validity := s.defaultValidity
	if p.Validity != nil {
		validity = *p.Validity
	}
	if validity <= 0 || validity > s.maxValidity {
		s.events.Emit(eventlog.LevelError, PackageShortURLs, fmt.Sprintf("Invalid validity: %d", validity))
		return nil, ErrInvalidValidity
	}

	now := s.now()
	rec := &domain.LinkRecord{
		LongURL:   p.URL,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(validity) * time.Minute),
	}

	var err error
	if p.Shortcode != "" {
		err = s.insertRequested(ctx, rec, p.Shortcode)
	} else {
		err = s.insertGenerated(ctx, rec)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Set(rec.Shortcode, rec.ExpiresAt)
	s.recorder.RecordBusiness("links_created", 1, map[string]string{
		"custom": strconv.FormatBool(p.Shortcode != ""),
	})
	s.events.Emit(eventlog.LevelInfo, PackageShortURLs, fmt.Sprintf("New short URL created for %s", p.URL))

	return &CreateResult{Shortcode: rec.Shortcode, ExpiresAt: rec.ExpiresAt}, nil
}

func (s *LinkService) insertRequested(ctx context.Context, rec *domain.LinkRecord, code string) error {
	if !shortener.IsValid(code) {
		s.events.Emit(eventlog.LevelError, PackageShortURLs, fmt.Sprintf("Invalid custom shortcode: %s", code))
		return ErrInvalidShortcode
	}
	if s.isReserved(code) {
		s.events.Emit(eventlog.LevelError, PackageShortURLs, fmt.Sprintf("Duplicate custom shortcode: %s", code))
		return ErrDuplicateShortcode
	}

	rec.Shortcode = code
	err := s.repo.Create(ctx, rec)
	if errors.Is(err, repository.ErrDuplicate) {
		s.events.Emit(eventlog.LevelError, PackageShortURLs, fmt.Sprintf("Duplicate custom shortcode: %s", code))
		return ErrDuplicateShortcode
	}
	if err != nil {
		s.events.Emit(eventlog.LevelError, PackageShortURLs, fmt.Sprintf("Failed to store shortcode %s", code))
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// insertGenerated draws codes until the repository accepts one. The insert itself
// is the uniqueness check, so a code is never reused between check and write.
func (s *LinkService) insertGenerated(ctx context.Context, rec *domain.LinkRecord) error {
	for range maxGenerateAttempts {
		code, err := s.generator.Generate()
		if err != nil {
			s.events.Emit(eventlog.LevelError, PackageShortURLs, "Failed to generate shortcode")
			return fmt.Errorf("failed to generate shortcode: %w", err)
		}
		if s.isReserved(code) {
			continue
		}

		rec.Shortcode = code
		err = s.repo.Create(ctx, rec)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			s.events.Emit(eventlog.LevelError, PackageShortURLs, fmt.Sprintf("Failed to store shortcode %s", code))
			return fmt.Errorf("failed to create link: %w", err)
		}
	}

	s.events.Emit(eventlog.LevelError, PackageShortURLs,
		fmt.Sprintf("No unique shortcode after %d attempts", maxGenerateAttempts))
	return ErrCodeSpaceExhausted
}

func (s *LinkService) Resolve(ctx context.Context, shortcode, referrer string) (string, error) {
	now := s.now()

	expiresAt, cached := s.cache.Get(shortcode)
	if cached {
		s.recorder.RecordBusiness("cache_hit", 1, nil)
		if !now.Before(expiresAt) {
			return "", s.expired(shortcode)
		}
	} else {
		s.recorder.RecordBusiness("cache_miss", 1, nil)
	}

	rec, err := s.repo.Resolve(ctx, shortcode, domain.ClickEvent{
		Timestamp:   now,
		Referrer:    cmp.Or(referrer, domain.UnknownReferrer),
		Geolocation: domain.PlaceholderLocation,
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// Unknown codes are caller-chosen, so they stay out of the labels.
		s.recorder.RecordBusiness("not_found", 1, nil)
		s.events.Emit(eventlog.LevelError, PackageRedirect, fmt.Sprintf("Shortcode not found: %s", shortcode))
		return "", ErrNotFound
	case errors.Is(err, repository.ErrExpired):
		if rec != nil {
			s.cache.Set(shortcode, rec.ExpiresAt)
		}
		return "", s.expired(shortcode)
	case err != nil:
		s.events.Emit(eventlog.LevelError, PackageRedirect, fmt.Sprintf("Failed to resolve shortcode: %s", shortcode))
		return "", fmt.Errorf("failed to resolve shortcode: %w", err)
	}

	if !cached {
		s.cache.Set(shortcode, rec.ExpiresAt)
	}
	s.recorder.RecordBusiness("redirects", 1, map[string]string{"shortcode": shortcode})
	s.events.Emit(eventlog.LevelInfo, PackageRedirect, fmt.Sprintf("Redirecting %s to %s", shortcode, rec.LongURL))
	return rec.LongURL, nil
}

func (s *LinkService) expired(shortcode string) error {
	s.recorder.RecordBusiness("expired_hits", 1, map[string]string{"shortcode": shortcode})
	s.events.Emit(eventlog.LevelWarning, PackageRedirect, fmt.Sprintf("Expired shortcode accessed: %s", shortcode))
	return ErrExpired
}

func (s *LinkService) Statistics(ctx context.Context, shortcode string) (*domain.StatsView, error) {
	view, err := s.repo.Stats(ctx, shortcode)
	if errors.Is(err, repository.ErrNotFound) {
		s.events.Emit(eventlog.LevelError, PackageStats,
			fmt.Sprintf("Attempted to retrieve stats for non-existent shortcode: %s", shortcode))
		return nil, ErrNotFound
	}
	if err != nil {
		s.events.Emit(eventlog.LevelError, PackageStats, fmt.Sprintf("Failed to retrieve stats for shortcode: %s", shortcode))
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	s.events.Emit(eventlog.LevelInfo, PackageStats, fmt.Sprintf("Successfully retrieved stats for shortcode: %s", shortcode))
	return view, nil
}

func (s *LinkService) isReserved(code string) bool {
	_, ok := s.reserved[code]
	return ok
}
