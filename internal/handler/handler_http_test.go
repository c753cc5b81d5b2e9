package handler_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/handler"
	"shortlink/internal/handler/mocks"
	"shortlink/internal/service"
)

func newTestHandler(t *testing.T, cfg handler.Config) (*handler.Handler, *mocks.MockLinkService, *mocks.MockAuthenticator) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	links := mocks.NewMockLinkService(t)
	auth := mocks.NewMockAuthenticator(t)
	h := handler.New(links, auth, logger, cfg)
	return h, links, auth
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func shortcodeContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, path, code string) echo.Context {
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames("shortcode")
	c.SetParamValues(code)
	return c
}

// CreateLink tests

func TestCreateLink_Success(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	expiry := time.Date(2025, 1, 1, 0, 30, 0, 0, time.UTC)
	links.EXPECT().Create(mock.Anything, service.CreateParams{URL: "https://example.com"}).
		Return(&service.CreateResult{Shortcode: "xyz789", ExpiresAt: expiry}, nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/shorturls", `{"url":"https://example.com"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.CreateLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "http://example.com/xyz789", resp.Shortlink)
	assert.Equal(t, "2025-01-01T00:30:00.000000Z", resp.Expiry)
}

func TestCreateLink_PassesValidityAndShortcode(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{BaseURL: "https://sho.rt"})

	links.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p service.CreateParams) bool {
		return p.URL == "https://example.com" && p.Validity != nil && *p.Validity == 5 && p.Shortcode == "promo1"
	})).Return(&service.CreateResult{Shortcode: "promo1", ExpiresAt: time.Now()}, nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/shorturls", `{"url":"https://example.com","validity":5,"shortcode":"promo1"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shortlink":"https://sho.rt/promo1"`)
}

func TestCreateLink_InvalidJSON(t *testing.T) {
	h, _, _ := newTestHandler(t, handler.Config{})

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/shorturls", `invalid json`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestCreateLink_NonNumericValidity(t *testing.T) {
	h, _, _ := newTestHandler(t, handler.Config{})

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/shorturls", `{"url":"https://example.com","validity":"soon"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateLink(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLink_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing url", service.ErrMissingURL, http.StatusBadRequest, "Missing 'url' field"},
		{"invalid validity", service.ErrInvalidValidity, http.StatusBadRequest, "validity"},
		{"invalid shortcode", service.ErrInvalidShortcode, http.StatusConflict, "Invalid custom shortcode"},
		{"duplicate shortcode", service.ErrDuplicateShortcode, http.StatusConflict, "Duplicate custom shortcode"},
		{"unexpected", errors.New("db error"), http.StatusInternalServerError, "failed to create short url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, links, _ := newTestHandler(t, handler.Config{})
			links.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tt.err)

			e := echo.New()
			req := jsonRequest(http.MethodPost, "/shorturls", `{"url":"x"}`)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.CreateLink(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// Redirect tests

func TestRedirect_Success(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Resolve(mock.Anything, "abc123", "https://google.com/").
		Return("https://example.com/redirect-target", nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req.Header.Set("Referer", "https://google.com/")
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/:shortcode", "abc123")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/redirect-target", rec.Header().Get("Location"))
}

func TestRedirect_NoReferrer(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Resolve(mock.Anything, "abc123", "").Return("https://example.com", nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/:shortcode", "abc123")

	require.NoError(t, h.Redirect(c))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRedirect_Expired(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Resolve(mock.Anything, "old123", "").Return("", service.ErrExpired)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/old123", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/:shortcode", "old123")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "This short URL has expired.", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestRedirect_NotFound(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Resolve(mock.Anything, "notfound", "").Return("", service.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/:shortcode", "notfound")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Short URL not found.", rec.Body.String())
}

func TestRedirect_ServiceError(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Resolve(mock.Anything, "abc123", "").Return("", errors.New("db error"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/:shortcode", "abc123")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Statistics tests

func TestStatistics_Success(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	links.EXPECT().Statistics(mock.Anything, "abc123").Return(&domain.StatsView{
		Shortcode:  "abc123",
		LongURL:    "https://example.com",
		CreatedAt:  created,
		ExpiresAt:  created.Add(30 * time.Minute),
		ClickCount: 1,
		ClickLog: []domain.ClickEvent{
			{Timestamp: created.Add(time.Minute), Referrer: "unknown", Geolocation: "mock-geolocation"},
		},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shorturls/abc123", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/shorturls/:shortcode", "abc123")

	err := h.Statistics(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatsResponse{
		Shortcode:    "abc123",
		TotalClicks:  1,
		OriginalURL:  "https://example.com",
		CreationDate: "2025-01-01T00:00:00.000000Z",
		ExpiryDate:   "2025-01-01T00:30:00.000000Z",
		ClickData: []domain.ClickData{
			{Timestamp: "2025-01-01T00:01:00.000000Z", Referrer: "unknown", Geolocation: "mock-geolocation"},
		},
	}, resp)
}

func TestStatistics_EmptyClickDataIsArray(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Statistics(mock.Anything, "abc123").Return(&domain.StatsView{Shortcode: "abc123"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shorturls/abc123", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/shorturls/:shortcode", "abc123")

	require.NoError(t, h.Statistics(c))
	assert.Contains(t, rec.Body.String(), `"click_data":[]`)
}

func TestStatistics_NotFound(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Statistics(mock.Anything, "nope").Return(nil, service.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shorturls/nope", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/shorturls/:shortcode", "nope")

	err := h.Statistics(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Short URL not found")
}

func TestStatistics_ServiceError(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Statistics(mock.Anything, "abc123").Return(nil, errors.New("db error"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shorturls/abc123", nil)
	rec := httptest.NewRecorder()
	c := shortcodeContext(e, req, rec, "/shorturls/:shortcode", "abc123")

	require.NoError(t, h.Statistics(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Login tests

func TestLogin_Success(t *testing.T) {
	h, _, auth := newTestHandler(t, handler.Config{})

	auth.EXPECT().Login(mock.Anything, "alice", "secret").Return(nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Login successful"}`, rec.Body.String())
}

func TestLogin_Rejected(t *testing.T) {
	h, _, auth := newTestHandler(t, handler.Config{})

	auth.EXPECT().Login(mock.Anything, "alice", "").Return(service.ErrInvalidCredentials)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/login", `{"username":"alice"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid login credentials"}`, rec.Body.String())
}

// Health endpoint test

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t, handler.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Health(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

// Routing tests

func TestRegister_PagesTakePrecedenceOverShortcodes(t *testing.T) {
	h, _, _ := newTestHandler(t, handler.Config{})

	e := echo.New()
	h.Register(e)

	for _, path := range []string{"/", "/shorten", "/stats"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		})
	}
}

func TestRegister_RoutesReachHandlers(t *testing.T) {
	h, links, _ := newTestHandler(t, handler.Config{})

	links.EXPECT().Resolve(mock.Anything, "abc123", "").Return("https://example.com", nil)
	links.EXPECT().Statistics(mock.Anything, "abc123").Return(nil, service.ErrNotFound)

	e := echo.New()
	h.Register(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/abc123", nil))
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shorturls/abc123", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
