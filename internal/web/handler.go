// Package web implements the gallery user interface: a search form posting to the server,
// a per session search state and html rendered from that state.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/sirupsen/logrus"
)

// ContributorsSource returns repository contributors.
//go:generate mockgen -destination mock/contributorssource.go -package mock github.com/m-zajac/contributorgallery/internal/web ContributorsSource
type ContributorsSource interface {
	Contributors(ctx context.Context, owner string, repo string) ([]app.Contributor, error)
}

// Handler serves gallery pages.
type Handler struct {
	source   ContributorsSource
	sessions *Sessions
	refresh  time.Duration
	l        logrus.FieldLogger
}

// NewHandler creates new Handler.
// refresh is the page reload interval used while a search is loading.
func NewHandler(source ContributorsSource, sessions *Sessions, refresh time.Duration, l logrus.FieldLogger) *Handler {
	return &Handler{
		source:   source,
		sessions: sessions,
		refresh:  refresh,
		l:        l,
	}
}

// Index renders the page from current session state.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	search, err := h.sessions.Search(w, r)
	if err != nil {
		h.l.Errorf("getting session: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := Page(search.Snapshot(), h.refresh).Render(r.Context(), w); err != nil {
		h.l.Errorf("rendering page: %v", err)
	}
}

// Search handles search form submission.
// Valid query starts fetching in background; the browser is sent back to the page either way.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	search, err := h.sessions.Search(w, r)
	if err != nil {
		h.l.Errorf("getting session: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	owner, repo := r.PostFormValue("owner"), r.PostFormValue("repo")
	q, err := NewQuery(owner, repo)
	if err != nil {
		search.Reject(Query{Owner: owner, Repo: repo}, err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx, gen := search.Begin(context.Background(), q)
	go h.fetch(ctx, search, gen, q)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Healthz is the gallery liveness check.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) fetch(ctx context.Context, search *Search, gen uint64, q Query) {
	l := h.l.WithFields(logrus.Fields{
		"owner": q.Owner,
		"repo":  q.Repo,
	})

	contributors, err := h.source.Contributors(ctx, q.Owner, q.Repo)
	if err != nil {
		l.Errorf("Error fetching contributors: %v", err)
	}
	if !search.Complete(gen, contributors, err) {
		l.Debug("dropping result of superseded search")
	}
}
