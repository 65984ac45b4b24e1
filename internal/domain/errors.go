package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrAccessDenied         = errors.New("identity is not allowed to sign in")
	ErrInvalidOrExpiredCode = errors.New("verification code is invalid or expired")
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrRenderFailure        = errors.New("document rendering failed")
)
