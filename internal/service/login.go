package service

import (
	"context"
	"fmt"

	"shortlink/internal/eventlog"
)

// LoginService is a stand-in for real authentication: it only checks that both
// fields are present and logs the attempt.
type LoginService struct {
	events EventEmitter
}

func NewLoginService(events EventEmitter) *LoginService {
	return &LoginService{events: events}
}

func (s *LoginService) Login(_ context.Context, username, password string) error {
	if username == "" || password == "" {
		s.events.Emit(eventlog.LevelError, PackageLogin, "Failed login attempt: missing username or password")
		return ErrInvalidCredentials
	}
	s.events.Emit(eventlog.LevelInfo, PackageLogin, fmt.Sprintf("Successful login for user: %s", username))
	return nil
}
