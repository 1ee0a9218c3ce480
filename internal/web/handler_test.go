package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/m-zajac/contributorgallery/internal/web/mock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T, source ContributorsSource) *http.ServeMux {
	t.Helper()

	sessions, err := NewSessions(10)
	require.NoError(t, err)
	l, _ := test.NewNullLogger()

	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(source, sessions, time.Second, l))
	return mux
}

func postSearch(t *testing.T, mux http.Handler, cookie *http.Cookie, owner string, repo string) *http.Cookie {
	t.Helper()

	form := url.Values{"owner": {owner}, "repo": {repo}}
	r := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	resp := w.Result()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	if cookie != nil {
		return cookie
	}
	require.Len(t, resp.Cookies(), 1)
	return resp.Cookies()[0]
}

func getPage(t *testing.T, mux http.Handler, cookie *http.Cookie) string {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	return w.Body.String()
}

func TestHandlerSearchSuccess(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := mock.NewMockContributorsSource(ctrl)

	release := make(chan struct{})
	source.EXPECT().
		Contributors(gomock.Any(), "facebook", "react").
		DoAndReturn(func(ctx context.Context, owner string, repo string) ([]app.Contributor, error) {
			<-release
			return []app.Contributor{
				{ID: 1, Login: "octocat", HTMLURL: "https://github.com/octocat", Contributions: 1},
				{ID: 2, Login: "gopher", HTMLURL: "https://github.com/gopher", Contributions: 7},
			}, nil
		})

	mux := newTestMux(t, source)
	cookie := postSearch(t, mux, nil, "  facebook ", "react ")

	page := getPage(t, mux, cookie)
	assert.Contains(t, page, "Loading contributors...")
	assert.Contains(t, page, `<meta http-equiv="refresh" content="1">`)
	assert.Contains(t, page, `value="facebook"`)

	close(release)

	assert.Eventually(t, func() bool {
		return strings.Contains(getPage(t, mux, cookie), "Contributors to facebook/react")
	}, time.Second, 10*time.Millisecond)

	page = getPage(t, mux, cookie)
	assert.Contains(t, page, "1 contribution<")
	assert.Contains(t, page, "7 contributions")
	assert.NotContains(t, page, "Loading contributors...")
}

func TestHandlerSearchError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		contributors []app.Contributor
		err          error
		wantMessage  string
	}{
		{
			name:        "not found",
			err:         &ResponseError{StatusCode: http.StatusNotFound, Message: "Repository not found"},
			wantMessage: "Repository not found. Please check the owner and repo name.",
		},
		{
			name:        "rate limited",
			err:         &ResponseError{StatusCode: http.StatusForbidden, Message: "GitHub API rate limit exceeded"},
			wantMessage: "GitHub API rate limit exceeded. Please try again later.",
		},
		{
			name:        "no response",
			err:         &NoResponseError{Err: io.ErrUnexpectedEOF},
			wantMessage: "No response from server. Please check your connection.",
		},
		{
			name:         "empty list",
			contributors: []app.Contributor{},
			wantMessage:  "No contributors found for this repository",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			source := mock.NewMockContributorsSource(ctrl)
			source.EXPECT().
				Contributors(gomock.Any(), "facebook", "react").
				Return(tt.contributors, tt.err)

			mux := newTestMux(t, source)
			cookie := postSearch(t, mux, nil, "facebook", "react")

			assert.Eventually(t, func() bool {
				return strings.Contains(getPage(t, mux, cookie), `<div class="error">`+tt.wantMessage+`</div>`)
			}, time.Second, 10*time.Millisecond)
		})
	}
}

func TestHandlerSearchValidation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := mock.NewMockContributorsSource(ctrl)
	source.EXPECT().
		Contributors(gomock.Any(), "facebook", "react").
		Return([]app.Contributor{{ID: 1, Login: "octocat", Contributions: 2}}, nil)

	mux := newTestMux(t, source)
	cookie := postSearch(t, mux, nil, "facebook", "react")
	assert.Eventually(t, func() bool {
		return strings.Contains(getPage(t, mux, cookie), "Contributors to facebook/react")
	}, time.Second, 10*time.Millisecond)

	// no further source calls are expected
	postSearch(t, mux, cookie, "   ", "react")

	page := getPage(t, mux, cookie)
	assert.Contains(t, page, "Both owner and repository name are required")
	assert.Contains(t, page, "Contributors to facebook/react", "previous results must stay")
	assert.NotContains(t, page, "Loading contributors...")
}

func TestHandlerNewSearchSupersedesPrevious(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := mock.NewMockContributorsSource(ctrl)

	firstCanceled := make(chan struct{})
	source.EXPECT().
		Contributors(gomock.Any(), "slow", "repo").
		DoAndReturn(func(ctx context.Context, owner string, repo string) ([]app.Contributor, error) {
			<-ctx.Done()
			close(firstCanceled)
			return []app.Contributor{{ID: 1, Login: "stale", Contributions: 1}}, nil
		})
	source.EXPECT().
		Contributors(gomock.Any(), "fast", "repo").
		Return([]app.Contributor{{ID: 2, Login: "fresh", Contributions: 1}}, nil)

	mux := newTestMux(t, source)
	cookie := postSearch(t, mux, nil, "slow", "repo")
	postSearch(t, mux, cookie, "fast", "repo")

	select {
	case <-firstCanceled:
	case <-time.After(time.Second):
		t.Fatal("first search was not canceled")
	}

	assert.Eventually(t, func() bool {
		return strings.Contains(getPage(t, mux, cookie), "Contributors to fast/repo")
	}, time.Second, 10*time.Millisecond)
	assert.NotContains(t, getPage(t, mux, cookie), "stale")
}

func TestHandlerRoutes(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t, mock.NewMockContributorsSource(gomock.NewController(t)))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "index", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantBody: "GitHub Contributor Gallery"},
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "stylesheet", method: http.MethodGet, path: "/static/style.css", wantStatus: http.StatusOK, wantBody: ".contributor-card"},
		{name: "unknown path", method: http.MethodGet, path: "/unknown", wantStatus: http.StatusNotFound},
		{name: "search with get", method: http.MethodGet, path: "/search", wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
