package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/contributorgallery/internal/api/http/mock"
	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewContributorsHandler(t *testing.T) {
	t.Parallel()

	validBody := `[{"login":"octocat","id":1,"avatar_url":"https://a/1","html_url":"https://g/octocat","contributions":5,"type":"User"}]`

	tests := []struct {
		name       string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid response is relayed verbatim",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(&app.ContributorList{
						StatusCode: http.StatusOK,
						Raw:        []byte(validBody),
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   validBody,
		},
		{
			name: "empty repository",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(app.EmptyContributorList(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "not found",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(nil, app.NotFoundError("Not Found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Repository not found"}`,
		},
		{
			name: "rate limited",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(nil, app.RateLimitedError("API rate limit exceeded for 127.0.0.1."))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"GitHub API rate limit exceeded"}`,
		},
		{
			name: "upstream error with message",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(nil, &app.UpstreamError{StatusCode: http.StatusForbidden, Message: "Repository access blocked"})
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Repository access blocked"}`,
		},
		{
			name: "upstream error without message",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(nil, &app.UpstreamError{StatusCode: http.StatusBadGateway})
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Error from GitHub API"}`,
		},
		{
			name: "no response from upstream",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(nil, &app.NetworkError{Err: errors.New("dial tcp: connection refused")})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name: "unexpected error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any(), "owner", "repo").
					Return(nil, errors.New("unmarshalling response"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			tt.setupMock(s)

			handler := NewContributorsHandler(
				func(*http.Request) (string, string) {
					return "owner", "repo"
				},
				s,
				logrus.New(),
			)
			req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))

			body := strings.Trim(w.Body.String(), "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestNewHealthHandler(t *testing.T) {
	t.Parallel()

	req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	w := httptest.NewRecorder()

	NewHealthHandler()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))
	assert.Equal(t, `{"status":"ok"}`, strings.Trim(w.Body.String(), "\n"))
}
