package service

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict is returned when registering an email that is already taken.
	ErrConflict = errors.New("email already registered")

	// ErrPasswordTooLong is returned when registering a password bcrypt cannot hash in full.
	ErrPasswordTooLong = errors.New("password too long")

	// ErrUnauthorized is returned for unknown users and wrong passwords.
	ErrUnauthorized = errors.New("invalid credentials")
)

// UpstreamError wraps any failure of the AI provider call.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream provider error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
