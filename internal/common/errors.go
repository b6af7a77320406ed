// Package common defines constants and sentinel errors shared by the server,
// the transports and the CLI client. Callers should match these values with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrVersionConflict = errors.New("version conflict")

	// ErrInvalidArgument is returned for requests rejected before any state
	// was touched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransactionFailed means a multi-record update could not be committed.
	// Nothing from the failed attempt is persisted, so the whole call is safe
	// to repeat.
	ErrTransactionFailed = errors.New("transaction failed")

	// Auth errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
