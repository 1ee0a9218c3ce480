package http

import (
	"context"
	"net/http"
	"time"

	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/sirupsen/logrus"
)

// Service can return repository contributors.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/contributorgallery/internal/api/http Service
type Service interface {
	Contributors(ctx context.Context, owner string, repo string) (*app.ContributorList, error)
}

// NewMux creates router for app's http server.
// timeout limits handlers execution, 0 means no limit.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	contributorsHandler := NewContributorsHandler(
		func(r *http.Request) (string, string) {
			return r.PathValue("owner"), r.PathValue("repo")
		},
		service,
		l,
	)
	if timeout > 0 {
		contributorsHandler = NewTimeoutMiddleware(timeout)(contributorsHandler)
	}

	m := http.NewServeMux()
	m.HandleFunc("GET /api/contributors/{owner}/{repo}", contributorsHandler)
	m.HandleFunc("GET /api/health", NewHealthHandler())

	var h http.Handler = m
	h = NewCORSMiddleware(h)
	h = NewRecoveryMiddleware(h, l)
	h = NewLoggingMiddleware(h, l)

	return h
}
