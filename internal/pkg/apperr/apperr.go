package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all services. Controllers never inspect these
// directly; the error handler middleware maps them to HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

func Unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
}

func BackendUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
