package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m-zajac/contributorgallery/internal/app"
)

const (
	messageNotFound     = "Repository not found. Please check the owner and repo name."
	messageRateLimited  = "GitHub API rate limit exceeded. Please try again later."
	messageFetchFailed  = "Failed to fetch contributors"
	messageNoResponse   = "No response from server. Please check your connection."
	messageUnexpected   = "An error occurred. Please try again."
	messageNoContribs   = "No contributors found for this repository"
	messageQueryMissing = "Both owner and repository name are required"
)

// ValidationError is returned for search form input rejected before any network call.
type ValidationError string

// Error implements error interface.
func (e ValidationError) Error() string {
	return string(e)
}

// ResponseError is a structured error response from the proxy service.
type ResponseError struct {
	StatusCode int
	Message    string
}

// Error implements error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("proxy responded with status %d: %s", e.StatusCode, e.Message)
}

// NoResponseError means request was sent, but no response was received.
type NoResponseError struct {
	Err error
}

// Error implements error interface.
func (e *NoResponseError) Error() string {
	return fmt.Sprintf("no response from proxy: %v", e.Err)
}

// Unwrap returns underlying transport error.
func (e *NoResponseError) Unwrap() error {
	return e.Err
}

// ErrorMessage returns text shown to the user for failed search.
func ErrorMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		switch {
		case respErr.StatusCode == http.StatusNotFound:
			return messageNotFound
		case respErr.StatusCode == http.StatusForbidden && app.IsRateLimitMessage(respErr.Message):
			return messageRateLimited
		case respErr.Message != "":
			return respErr.Message
		default:
			return messageFetchFailed
		}
	}

	var noRespErr *NoResponseError
	if errors.As(err, &noRespErr) {
		return messageNoResponse
	}

	return messageUnexpected
}
