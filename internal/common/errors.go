// Package common defines shared constants and sentinel errors used across
// the placetrack client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Resource-level errors.
	ErrNotFound = errors.New("not found")

	// Transport / availability errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
