package domain

import "errors"

var (
	ErrNotFound        = errors.New("rate_not_found")
	ErrInvalidCurrency = errors.New("invalid_currency")
	ErrInvalidRate     = errors.New("invalid_rate")
	ErrBaseImmutable   = errors.New("base_rate_immutable")
)
