package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
	"shortlink/internal/service"
	"shortlink/internal/web"
)

// ReservedPaths are the first path segments taken by fixed routes. They can
// never be used as shortcodes.
var ReservedPaths = []string{"shorten", "stats", "login", "shorturls", "api"}

const (
	msgExpired  = "This short URL has expired."
	msgNotFound = "Short URL not found."
)

var (
	errInvalidBody        = map[string]string{"error": "invalid request body"}
	errURLRequired        = map[string]string{"error": "Missing 'url' field"}
	errInvalidValidity    = map[string]string{"error": "validity must be a positive number of minutes"}
	errInvalidShortcode   = map[string]string{"error": "Invalid custom shortcode"}
	errDuplicateShortcode = map[string]string{"error": "Duplicate custom shortcode"}
	errStatsNotFound      = map[string]string{"error": "Short URL not found"}
	errCreateFailed       = map[string]string{"error": "failed to create short url"}
	errRedirectFailed     = map[string]string{"error": "failed to resolve short url"}
	errStatsFailed        = map[string]string{"error": "failed to get statistics"}
	errPageFailed         = map[string]string{"error": "failed to load page"}
	respHealthOK          = map[string]string{"status": "ok"}
	respLoginOK           = domain.MessageResponse{Message: "Login successful"}
	respLoginFailed       = domain.MessageResponse{Message: "Invalid login credentials"}
)

type Config struct {
	// BaseURL prefixes every shortlink. Empty means scheme://host/ of the request.
	BaseURL string
}

type Handler struct {
	links   LinkService
	auth    Authenticator
	logger  *slog.Logger
	baseURL string
}

func New(links LinkService, auth Authenticator, logger *slog.Logger, cfg Config) *Handler {
	baseURL := cfg.BaseURL
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Handler{
		links:   links,
		auth:    auth,
		logger:  logger,
		baseURL: baseURL,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.page(web.PageLogin))
	e.GET("/shorten", h.page(web.PageShorten))
	e.GET("/stats", h.page(web.PageStats))
	e.POST("/login", h.Login)
	e.GET("/api/health", h.Health)
	e.POST("/shorturls", h.CreateLink)
	e.GET("/shorturls/:shortcode", h.Statistics)
	e.GET("/:shortcode", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	res, err := h.links.Create(c.Request().Context(), service.CreateParams{
		URL:       req.URL,
		Validity:  req.Validity,
		Shortcode: req.Shortcode,
	})
	switch {
	case errors.Is(err, service.ErrMissingURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, service.ErrInvalidValidity):
		return c.JSON(http.StatusBadRequest, errInvalidValidity)
	case errors.Is(err, service.ErrInvalidShortcode):
		return c.JSON(http.StatusConflict, errInvalidShortcode)
	case errors.Is(err, service.ErrDuplicateShortcode):
		return c.JSON(http.StatusConflict, errDuplicateShortcode)
	case err != nil:
		h.logger.Error("failed to create short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, domain.CreateLinkResponse{
		Shortlink: h.shortlink(c, res.Shortcode),
		Expiry:    domain.FormatTime(res.ExpiresAt),
	})
}

func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("shortcode")

	longURL, err := h.links.Resolve(c.Request().Context(), code, c.Request().Referer())
	switch {
	case errors.Is(err, service.ErrExpired):
		return c.String(http.StatusGone, msgExpired)
	case errors.Is(err, service.ErrNotFound):
		return c.String(http.StatusNotFound, msgNotFound)
	case err != nil:
		h.logger.Error("failed to resolve short url",
			slog.String("shortcode", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errRedirectFailed)
	}

	return c.Redirect(http.StatusFound, longURL)
}

func (h *Handler) Statistics(c echo.Context) error {
	code := c.Param("shortcode")

	view, err := h.links.Statistics(c.Request().Context(), code)
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errStatsNotFound)
	}
	if err != nil {
		h.logger.Error("failed to get statistics",
			slog.String("shortcode", code),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errStatsFailed)
	}

	return c.JSON(http.StatusOK, domain.NewStatsResponse(view))
}

func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.auth.Login(c.Request().Context(), req.Username, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, respLoginFailed)
	}
	return c.JSON(http.StatusOK, respLoginOK)
}

func (h *Handler) page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		b, err := web.Page(name)
		if err != nil {
			h.logger.Error("failed to serve page", slog.String("page", name), slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errPageFailed)
		}
		h.logger.Debug("serving page", slog.String("page", name))
		return c.HTMLBlob(http.StatusOK, b)
	}
}

func (h *Handler) shortlink(c echo.Context, code string) string {
	if h.baseURL != "" {
		return h.baseURL + code
	}
	return c.Scheme() + "://" + c.Request().Host + "/" + code
}
