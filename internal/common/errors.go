package common

import "errors"

var (
	// Credential errors. All of them are reported to clients as "unauthorized".
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthScheme = errors.New("invalid authorization scheme")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnknownToken      = errors.New("unknown token")

	// Connection pool errors.
	ErrPoolClosed = errors.New("connection pool closed")
)
