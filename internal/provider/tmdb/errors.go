package tmdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for TMDb API operations.
var (
	ErrNotFound     = errors.New("tmdb: not found")
	ErrRateLimited  = errors.New("tmdb: rate limited by server")
	ErrBadRequest   = errors.New("tmdb: bad request")
	ErrUnauthorized = errors.New("tmdb: unauthorized")
	ErrServer       = errors.New("tmdb: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op    string // Operation: "searchMovies", "discoverMovies"
	Query string // If applicable
	Err   error
}

func (e *Error) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("tmdb %s [%q]: %v", e.Op, e.Query, e.Err)
	}
	return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, query string, err error) error {
	return &Error{
		Op:    op,
		Query: query,
		Err:   err,
	}
}
