package domain

import "errors"

var (
	ErrNotFound              = errors.New("not_found")
	ErrInvalidID             = errors.New("invalid_id")
	ErrInvalidMode           = errors.New("invalid_mode")
	ErrInvalidType           = errors.New("invalid_type")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrInvalidSection        = errors.New("invalid_section")
	ErrInvalidBasis          = errors.New("invalid_basis")
	ErrInvalidValidityWindow = errors.New("invalid_validity_window")
	ErrInvalidDate           = errors.New("invalid_date")
	ErrNoDraft               = errors.New("no_draft")
	ErrDraftInProgress       = errors.New("draft_in_progress")
)
