package unsplash

import (
	"errors"
	"fmt"
)

// Sentinel errors for Unsplash API operations.
var (
	ErrNotFound     = errors.New("unsplash: not found")
	ErrRateLimited  = errors.New("unsplash: rate limited by server")
	ErrBadRequest   = errors.New("unsplash: bad request")
	ErrUnauthorized = errors.New("unsplash: unauthorized")
	ErrServer       = errors.New("unsplash: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op    string // Operation: "searchPhotos"
	Query string // If applicable
	Err   error
}

func (e *Error) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("unsplash %s [%q]: %v", e.Op, e.Query, e.Err)
	}
	return fmt.Sprintf("unsplash %s: %v", e.Op, e.Err)
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
