package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
)

func TestLinkRecord_Expired(t *testing.T) {
	expiry := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rec := &domain.LinkRecord{ExpiresAt: expiry}

	assert.False(t, rec.Expired(expiry.Add(-time.Microsecond)))
	assert.True(t, rec.Expired(expiry))
	assert.True(t, rec.Expired(expiry.Add(time.Second)))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2025, 1, 1, 12, 30, 5, 123456789, time.FixedZone("CET", 3600))
	assert.Equal(t, "2025-01-01T11:30:05.123456Z", domain.FormatTime(ts))
}

func TestNewStatsResponse(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	view := &domain.StatsView{
		Shortcode:  "abc123",
		LongURL:    "https://example.com",
		CreatedAt:  created,
		ExpiresAt:  created.Add(30 * time.Minute),
		ClickCount: 2,
		ClickLog: []domain.ClickEvent{
			{Timestamp: created.Add(time.Minute), Referrer: "unknown", Geolocation: "mock-geolocation"},
			{Timestamp: created.Add(2 * time.Minute), Referrer: "https://google.com", Geolocation: "mock-geolocation"},
		},
	}

	b, err := json.Marshal(domain.NewStatsResponse(view))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"shortcode": "abc123",
		"total_clicks": 2,
		"original_url": "https://example.com",
		"creation_date": "2025-01-01T00:00:00.000000Z",
		"expiry_date": "2025-01-01T00:30:00.000000Z",
		"click_data": [
			{"timestamp": "2025-01-01T00:01:00.000000Z", "referrer": "unknown", "geolocation": "mock-geolocation"},
			{"timestamp": "2025-01-01T00:02:00.000000Z", "referrer": "https://google.com", "geolocation": "mock-geolocation"}
		]
	}`, string(b))
}

func TestNewStatsResponse_NoClicks(t *testing.T) {
	b, err := json.Marshal(domain.NewStatsResponse(&domain.StatsView{Shortcode: "abc123"}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"click_data":[]`)
}

func TestCreateLinkRequest_OptionalFields(t *testing.T) {
	var req domain.CreateLinkRequest
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://example.com"}`), &req))
	assert.Nil(t, req.Validity)
	assert.Empty(t, req.Shortcode)

	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://example.com","validity":0,"shortcode":"x1"}`), &req))
	require.NotNil(t, req.Validity)
	assert.Zero(t, *req.Validity)
	assert.Equal(t, "x1", req.Shortcode)
}
