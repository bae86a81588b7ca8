package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network failures, including context cancellation.
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse wraps response bodies that cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidID is returned before any request is made for an unusable record id.
	ErrInvalidID = errors.New("invalid connection id")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
