package core

import "errors"

var (
	ErrMissingSecret    = errors.New("captcha secret is not configured")
	ErrMissingToken     = errors.New("captcha token is missing")
	ErrStoreUnavailable = errors.New("result store unavailable")
	ErrInvalidClearance = errors.New("invalid clearance pass")
)
