package web

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

const (
	sessionCookieName = "gallery_session"
	sessionIDBytes    = 16
)

// Sessions keeps per browser search state.
// Least recently used sessions are dropped when size is reached; such browser simply starts idle.
type Sessions struct {
	m     sync.Mutex
	cache *lru.Cache
}

// NewSessions creates new Sessions instance holding at most size sessions.
func NewSessions(size int) (*Sessions, error) {
	if size <= 0 {
		return nil, errors.New("sessions size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for sessions: %w", err)
	}

	return &Sessions{
		cache: cache,
	}, nil
}

// Search returns search state bound to requests session.
// New session is created (and its cookie set on w) when request has none or it expired.
func (s *Sessions) Search(w http.ResponseWriter, r *http.Request) (*Search, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if val, ok := s.cache.Get(cookie.Value); ok {
			return val.(*Search), nil
		}
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	search := NewSearch()
	s.cache.Add(id, search)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return search, nil
}

// Len returns number of live sessions.
func (s *Sessions) Len() int {
	return s.cache.Len()
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
