package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("vendor internal error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or
	// lacks a required field.
	ErrMalformedResponse = errors.New("malformed vendor response")
)

// StatusError carries the HTTP status of a failed vendor call. It wraps one of
// the sentinels above when the status is known.
type StatusError struct {
	StatusCode int
	Body       string
	err        error
}

func (e *StatusError) Error() string {
	if e.err == nil {
		return e.Body
	}
	if e.Body == "" {
		return e.err.Error()
	}
	return e.err.Error() + ": " + e.Body
}

func (e *StatusError) Unwrap() error {
	return e.err
}
