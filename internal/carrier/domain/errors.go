package domain

import "errors"

var (
	ErrNotFound     = errors.New("carrier_not_found")
	ErrInvalidID    = errors.New("invalid_carrier_id")
	ErrInvalidCode  = errors.New("invalid_carrier_code")
	ErrInvalidName  = errors.New("invalid_carrier_name")
	ErrCodeConflict = errors.New("carrier_code_conflict")
)
