package tumblr

import (
	"errors"
	"fmt"
)

// Sentinel errors for Tumblr API operations.
var (
	ErrNotFound     = errors.New("tumblr: not found")
	ErrRateLimited  = errors.New("tumblr: rate limited by server")
	ErrBadRequest   = errors.New("tumblr: bad request")
	ErrUnauthorized = errors.New("tumblr: unauthorized")
	ErrServer       = errors.New("tumblr: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // Operation: "tagged"
	Tag string // If applicable
	Err error
}

func (e *Error) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("tumblr %s [%q]: %v", e.Op, e.Tag, e.Err)
	}
	return fmt.Sprintf("tumblr %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, tag string, err error) error {
	return &Error{
		Op:  op,
		Tag: tag,
		Err: err,
	}
}
