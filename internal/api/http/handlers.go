package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/sirupsen/logrus"
)

const (
	messageNotFound      = "Repository not found"
	messageRateLimited   = "GitHub API rate limit exceeded"
	messageUpstreamError = "Error from GitHub API"
	messageInternalError = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// NewContributorsHandler creates handlerfunc relaying repository contributors.
// Successful upstream body is written as is.
func NewContributorsHandler(
	getParams func(*http.Request) (owner string, repo string),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, repo := getParams(r)

		list, err := service.Contributors(r.Context(), owner, repo)
		if err != nil {
			l.WithFields(logrus.Fields{
				"owner": owner,
				"repo":  repo,
			}).Errorf("Error fetching contributors: %v", err)

			status, message := translateError(err)
			writeJSON(w, status, errorResponse{Error: message})
			return
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		w.WriteHeader(list.StatusCode)
		_, _ = w.Write(list.Raw)
	}
}

// NewHealthHandler creates liveness handler. It never touches upstream.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}

// translateError maps app error to response status and message.
// Network and unexpected errors collapse to generic 500, so no internal detail leaks out.
func translateError(err error) (int, string) {
	if app.IsNotFoundError(err) {
		return http.StatusNotFound, messageNotFound
	}
	if app.IsRateLimitedError(err) {
		return http.StatusForbidden, messageRateLimited
	}
	if upErr, ok := app.AsUpstreamError(err); ok {
		message := upErr.Message
		if message == "" {
			message = messageUpstreamError
		}
		return upErr.StatusCode, message
	}

	return http.StatusInternalServerError, messageInternalError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}
