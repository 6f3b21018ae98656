// Package common defines shared sentinel errors used across linkhub
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Validation errors (missing or malformed input).
	ErrorValidation = errors.New("validation error")

	// Auth errors (bad credentials or invalid/malformed token).
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")

	// Ownership errors (valid identity, foreign record).
	ErrorForbidden = errors.New("forbidden")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
