package app

import (
	"net/http"
	"strings"
)

// rateLimitMarker is the wording GitHub uses in 403 messages caused by an exhausted rate limit,
// e.g. "API rate limit exceeded for 1.2.3.4."
// This couples us to the provider's wording: if GitHub rephrases it, rate limited responses
// will be relayed as plain upstream errors. Change IsRateLimitMessage then.
const rateLimitMarker = "rate limit"

// IsRateLimitMessage tells if upstream error message describes an exhausted rate limit.
func IsRateLimitMessage(message string) bool {
	return strings.Contains(message, rateLimitMarker)
}

// ClassifyUpstreamError translates upstream error response into app error.
//
// 404 becomes NotFoundError, 403 with rate limit message becomes RateLimitedError,
// everything else is returned as *UpstreamError carrying status and message.
func ClassifyUpstreamError(statusCode int, message string) error {
	switch {
	case statusCode == http.StatusNotFound:
		if message == "" {
			message = "not found"
		}
		return NotFoundError(message)
	case statusCode == http.StatusForbidden && IsRateLimitMessage(message):
		return RateLimitedError(message)
	default:
		return &UpstreamError{
			StatusCode: statusCode,
			Message:    message,
		}
	}
}
