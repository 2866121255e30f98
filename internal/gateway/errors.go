package gateway

import (
	"context"
	"errors"
	"fmt"
)

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NetworkError is returned when no usable response arrived: the request timed
// out, was aborted, or the transport failed.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Timeout() {
		return "request timed out"
	}

	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request was abandoned because its deadline passed.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var te interface{ Timeout() bool }

	return errors.As(e.Err, &te) && te.Timeout()
}
