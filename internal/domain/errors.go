package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrVendorNotFound is returned when a vendor id has no profile
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrUserNotFound is returned when a user id has no profile
	ErrUserNotFound = errors.New("user not found")

	// ErrRankerUnavailable is returned when the remote ranking service fails
	// or returns a non-success status. Callers of the fallback wrapper never
	// see it; the local pipeline answers instead.
	ErrRankerUnavailable = errors.New("ranking service unavailable")
)
