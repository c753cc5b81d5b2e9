package domain

import "time"

// TimeLayout renders UTC timestamps with microseconds and a trailing Z.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

const (
	UnknownReferrer     = "unknown"
	PlaceholderLocation = "mock-geolocation"
)

type LinkRecord struct {
	Shortcode  string
	LongURL    string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ClickCount int64
	ClickLog   []ClickEvent
}

// Expired reports whether the record refuses redirects at now.
func (r *LinkRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

type ClickEvent struct {
	Timestamp   time.Time
	Referrer    string
	Geolocation string
}

// StatsView is a point-in-time copy of a record; mutating it does not touch the store.
type StatsView struct {
	Shortcode  string
	LongURL    string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ClickCount int64
	ClickLog   []ClickEvent
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
