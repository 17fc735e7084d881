// Package common defines shared sentinel errors and small crypto/rand
// helpers used across the service layers. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound          = errors.New("not found")
	ErrorDuplicateUsername = errors.New("duplicate username")

	// service-level errors (generic/internal flow control)
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// auth errors (invalid or malformed token)
	ErrInvalidToken = errors.New("invalid token")
)
