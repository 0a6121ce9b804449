package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken means no bearer token was available; the request was
	// aborted before any network I/O. Callers should redirect to login.
	ErrNoToken = errors.New("no bearer token available")

	// ErrUnauthorized means the server rejected the bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// ServerError represents a 5xx response.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}
