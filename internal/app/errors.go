package app

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when upstream doesn't know the requested repository.
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFoundError checks if given error is caused by unknown repository.
func IsNotFoundError(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

// RateLimitedError is returned when upstream refuses to answer because of exhausted rate limit.
type RateLimitedError string

// Error implements error interface.
func (e RateLimitedError) Error() string {
	return string(e)
}

// IsRateLimitedError checks if given error is caused by upstream rate limit.
func IsRateLimitedError(err error) bool {
	var e RateLimitedError
	return errors.As(err, &e)
}

// UpstreamError is any other error response from upstream.
type UpstreamError struct {
	StatusCode int
	Message    string
}

// Error implements error interface.
func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Message)
}

// AsUpstreamError returns UpstreamError from given error chain.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var e *UpstreamError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// NetworkError means no response was received from upstream at all.
type NetworkError struct {
	Err error
}

// Error implements error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("no response from upstream: %v", e.Err)
}

// Unwrap returns underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError checks if given error is caused by missing upstream response.
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}
