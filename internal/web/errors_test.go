package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &ResponseError{StatusCode: http.StatusNotFound, Message: "Repository not found"},
			want: "Repository not found. Please check the owner and repo name.",
		},
		{
			name: "rate limited",
			err:  &ResponseError{StatusCode: http.StatusForbidden, Message: "GitHub API rate limit exceeded"},
			want: "GitHub API rate limit exceeded. Please try again later.",
		},
		{
			name: "forbidden, other reason",
			err:  &ResponseError{StatusCode: http.StatusForbidden, Message: "Repository access blocked"},
			want: "Repository access blocked",
		},
		{
			name: "service message",
			err:  &ResponseError{StatusCode: http.StatusBadGateway, Message: "Server Error"},
			want: "Server Error",
		},
		{
			name: "no service message",
			err:  &ResponseError{StatusCode: http.StatusInternalServerError},
			want: "Failed to fetch contributors",
		},
		{
			name: "wrapped response error",
			err:  fmt.Errorf("fetching: %w", &ResponseError{StatusCode: http.StatusNotFound}),
			want: "Repository not found. Please check the owner and repo name.",
		},
		{
			name: "no response",
			err:  &NoResponseError{Err: errors.New("connection refused")},
			want: "No response from server. Please check your connection.",
		},
		{
			name: "anything else",
			err:  errors.New("unmarshalling response"),
			want: "An error occurred. Please try again.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
