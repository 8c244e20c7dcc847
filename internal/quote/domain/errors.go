package domain

import "errors"

var (
	ErrNoMatch        = errors.New("no_matching_rate")
	ErrInvalidRequest = errors.New("invalid_quote_request")
	ErrRenderFailed   = errors.New("quote_render_failed")
)
