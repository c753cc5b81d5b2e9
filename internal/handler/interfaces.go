package handler

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
	"shortlink/internal/service"
)

type LinkService interface {
	Create(ctx context.Context, p service.CreateParams) (*service.CreateResult, error)
	Resolve(ctx context.Context, shortcode, referrer string) (string, error)
	Statistics(ctx context.Context, shortcode string) (*domain.StatsView, error)
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) error
}
