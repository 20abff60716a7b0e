package generator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Session holds one user's credentials and the most recent pitch.
type Session struct {
	ID        string
	CreatedAt time.Time

	pipeline *Pipeline
	busy     atomic.Bool

	mu    sync.RWMutex
	creds Credentials
	last  *Pitch
}

// NewSession returns a session with no pitch yet.
func NewSession(id string, pipeline *Pipeline) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		pipeline:  pipeline,
	}
}

// SetCredentials replaces the keys that are non-empty in c.
func (s *Session) SetCredentials(c Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.OpenAIKey != "" {
		s.creds.OpenAIKey = c.OpenAIKey
	}
	if c.SerpAPIKey != "" {
		s.creds.SerpAPIKey = c.SerpAPIKey
	}
}

// Credentials returns a copy of the session's keys.
func (s *Session) Credentials() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Generate runs the pipeline for prefs. Only one run may be in flight per
// session; the stored pitch is replaced only when the run succeeds.
func (s *Session) Generate(ctx context.Context, prefs Preferences) (Pitch, error) {
	if err := s.Credentials().Validate(); err != nil {
		return Pitch{}, err
	}
	if !s.busy.CompareAndSwap(false, true) {
		return Pitch{}, ErrBusy
	}
	defer s.busy.Store(false)

	pitch, err := s.pipeline.Run(ctx, s.Credentials(), prefs)
	if err != nil {
		return Pitch{}, err
	}

	s.mu.Lock()
	s.last = &pitch
	s.mu.Unlock()
	return pitch, nil
}

// Busy reports whether a pipeline run is in flight.
func (s *Session) Busy() bool { return s.busy.Load() }

// Last returns the most recent successful pitch.
func (s *Session) Last() (Pitch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Pitch{}, false
	}
	return *s.last, true
}
