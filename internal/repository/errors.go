package repository

import "errors"

var (
	ErrDuplicate = errors.New("shortcode already exists")
	ErrNotFound  = errors.New("shortcode not found")
	ErrExpired   = errors.New("shortcode expired")
)
