package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for a missing user and for a wrong
	// password alike, so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned when a presented token is unknown or its
	// user no longer exists.
	ErrInvalidToken = errors.New("invalid token")

	// ErrBadTrip is returned when a trip payload is well-formed but
	// semantically invalid (end odometer reading before start).
	ErrBadTrip = errors.New("bad trip")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
