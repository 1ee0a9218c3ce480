package web

import (
	"context"
	"strings"
	"sync"

	"github.com/m-zajac/contributorgallery/internal/app"
)

// Phase of a single search.
type Phase int

// Search phases.
const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Query identifies searched repository.
type Query struct {
	Owner string
	Repo  string
}

// NewQuery trims given values and validates that both are present.
func NewQuery(owner string, repo string) (Query, error) {
	q := Query{
		Owner: strings.TrimSpace(owner),
		Repo:  strings.TrimSpace(repo),
	}
	if q.Owner == "" || q.Repo == "" {
		return Query{}, ValidationError(messageQueryMissing)
	}

	return q, nil
}

// State is everything needed to render the gallery page.
type State struct {
	Phase Phase

	// Input - form values as typed by the user.
	Input Query

	// FormError - validation message shown under the form.
	FormError string

	// Error - failed search message.
	Error string

	// Repo - repository the Contributors belong to, set on success.
	Repo *Query

	Contributors []app.Contributor
}

// Search holds search state of one user session.
//
// Each started search gets a generation number. Only the result of the latest generation
// changes the state; starting a search cancels the one in flight.
type Search struct {
	m          sync.Mutex
	state      State
	generation uint64
	query      Query
	cancel     context.CancelFunc
}

// NewSearch creates idle Search.
func NewSearch() *Search {
	return &Search{}
}

// Snapshot returns copy of current state.
func (s *Search) Snapshot() State {
	s.m.Lock()
	defer s.m.Unlock()

	st := s.state
	if st.Repo != nil {
		repo := *st.Repo
		st.Repo = &repo
	}
	if st.Contributors != nil {
		st.Contributors = append([]app.Contributor(nil), st.Contributors...)
	}

	return st
}

// Reject records invalid form submission. Results of previous searches stay untouched.
func (s *Search) Reject(input Query, err error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.state.Input = input
	s.state.FormError = err.Error()
}

// Begin starts new search generation and switches to loading.
// Returned context is canceled when next search begins.
func (s *Search) Begin(parent context.Context, q Query) (context.Context, uint64) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	s.generation++
	s.query = q
	s.state = State{
		Phase: PhaseLoading,
		Input: q,
	}

	return ctx, s.generation
}

// Complete applies result of search generation gen.
// Returns false when gen is stale, in that case state is not modified.
func (s *Search) Complete(gen uint64, contributors []app.Contributor, err error) bool {
	s.m.Lock()
	defer s.m.Unlock()

	if gen != s.generation || s.state.Phase != PhaseLoading {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	switch {
	case err != nil:
		s.state.Phase = PhaseError
		s.state.Error = ErrorMessage(err)
	case len(contributors) == 0:
		s.state.Phase = PhaseError
		s.state.Error = messageNoContribs
	default:
		s.state.Phase = PhaseSuccess
		s.state.Contributors = contributors
		q := s.query
		s.state.Repo = &q
	}

	return true
}
