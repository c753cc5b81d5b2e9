package service

import "errors"

var (
	ErrMissingURL         = errors.New("missing url")
	ErrInvalidValidity    = errors.New("validity must be a positive number of minutes within the allowed maximum")
	ErrInvalidShortcode   = errors.New("shortcode must contain only letters and digits")
	ErrDuplicateShortcode = errors.New("shortcode already in use")
	ErrNotFound           = errors.New("short url not found")
	ErrExpired            = errors.New("short url has expired")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique shortcode")
	ErrInvalidCredentials = errors.New("invalid login credentials")
)
