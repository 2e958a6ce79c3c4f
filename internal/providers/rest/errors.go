package rest

import (
	"errors"
	"fmt"
)

// TimeoutError is returned when a request exceeds its deadline.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// UnrecognizedResponseError is returned for any status other than 200 OK.
// Other 2xx codes are rejected as well; the upstream APIs only ever answer 200.
type UnrecognizedResponseError struct {
	URL        string
	StatusCode int
}

func (e *UnrecognizedResponseError) Error() string {
	return fmt.Sprintf("status code %d from %s is not handled", e.StatusCode, e.URL)
}

// MalformedBodyError is returned when a response body is not valid JSON
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("malformed response body: %v", e.Err)
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a JSON body lacks a field the caller needs
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response is missing field %q", e.Field)
}

// IsUpstreamError reports whether err was caused by an upstream provider
// misbehaving rather than by the caller or the local process.
func IsUpstreamError(err error) bool {
	var (
		timeoutErr      *TimeoutError
		unrecognizedErr *UnrecognizedResponseError
		malformedErr    *MalformedBodyError
		missingErr      *MissingFieldError
	)
	return errors.As(err, &timeoutErr) ||
		errors.As(err, &unrecognizedErr) ||
		errors.As(err, &malformedErr) ||
		errors.As(err, &missingErr)
}
