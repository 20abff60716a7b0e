package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"startup_pitcher/generator"
	"startup_pitcher/render"
)

//go:embed web
var embeddedStatic embed.FS

// DownloadName is the file name of the plain-text pitch download.
const DownloadName = "startup_pitch_deck.txt"

// pitchTimeout bounds one research + generation run.
const pitchTimeout = 5 * time.Minute

type Server struct {
	pipeline *generator.Pipeline
	defaults generator.Credentials
	store    *sessionStore
	staticFS http.Handler
	logger   *log.Logger
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*generator.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Options configures a Server.
type Options struct {
	// Defaults seed the credentials of every new session.
	Defaults generator.Credentials
	Logger   *log.Logger
}

func New(pipeline *generator.Pipeline, opts Options) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("pipeline required")
	}

	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Server{
		pipeline: pipeline,
		defaults: opts.Defaults,
		store:    newStore(),
		staticFS: http.FileServer(http.FS(sub)),
		logger:   logger,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/options", s.handleOptions)
	mux.HandleFunc("POST /api/sessions", s.handleSessionCreate)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleSessionGet)
	mux.HandleFunc("PUT /api/sessions/{id}/credentials", s.handleCredentials)
	mux.HandleFunc("POST /api/sessions/{id}/pitch", s.handlePitch)
	mux.HandleFunc("GET /api/sessions/{id}/pitch.txt", s.handleDownload)
	mux.Handle("GET /", s.staticFS)
	return logMiddleware(s.logger, mux)
}

// --- Handlers ---

type optionsResp struct {
	Stages       []string            `json:"stages"`
	Purposes     []string            `json:"purposes"`
	PitchLengths []string            `json:"pitch_lengths"`
	Default      string              `json:"default_pitch_length"`
	Outlines     []generator.Outline `json:"outlines"`
}

type credentialsState struct {
	OpenAI  bool `json:"openai"`
	SerpAPI bool `json:"serpapi"`
}

type sessionResp struct {
	SessionID   string            `json:"session_id"`
	Credentials credentialsState  `json:"credentials"`
	Busy        bool              `json:"busy"`
	Pitch       *generator.Pitch  `json:"pitch,omitempty"`
	Slides      []generator.Slide `json:"slides,omitempty"`
	Deck        *render.Deck      `json:"deck,omitempty"`
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	def, _ := generator.OutlineFor(generator.DefaultPitchLength)
	writeJSON(w, http.StatusOK, optionsResp{
		Stages:       generator.Stages,
		Purposes:     generator.Purposes,
		PitchLengths: generator.PitchLengthLabels(),
		Default:      def.Label,
		Outlines:     generator.Outlines(),
	})
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var creds generator.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := uuid.NewString()
	sess := generator.NewSession(id, s.pipeline)
	sess.SetCredentials(s.defaults)
	sess.SetCredentials(creds)
	s.store.set(id, sess)

	resp, err := s.sessionState(sess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	resp, err := s.sessionState(sess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCredentials(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var creds generator.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sess.SetCredentials(creds)
	c := sess.Credentials()
	writeJSON(w, http.StatusOK, credentialsState{OpenAI: c.OpenAIKey != "", SerpAPI: c.SerpAPIKey != ""})
}

func (s *Server) handlePitch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var prefs generator.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pitchTimeout)
	defer cancel()
	if _, err := sess.Generate(ctx, prefs); err != nil {
		s.logger.Printf("[WARN] session %s: %v", sess.ID, err)
		writeError(w, statusFor(err), err)
		return
	}

	resp, err := s.sessionState(sess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	pitch, ok := sess.Last()
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no pitch generated yet"))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadName))
	_, _ = w.Write([]byte(pitch.Document))
}

// --- Helpers ---

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*generator.Session, bool) {
	sess, ok := s.store.get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("session not found"))
	}
	return sess, ok
}

// sessionState re-parses the stored document on every call.
func (s *Server) sessionState(sess *generator.Session) (sessionResp, error) {
	c := sess.Credentials()
	resp := sessionResp{
		SessionID:   sess.ID,
		Credentials: credentialsState{OpenAI: c.OpenAIKey != "", SerpAPI: c.SerpAPIKey != ""},
		Busy:        sess.Busy(),
	}
	pitch, ok := sess.Last()
	if !ok {
		return resp, nil
	}
	slides := generator.ParseSlides(pitch.Document)
	deck, err := render.NewDeck(slides)
	if err != nil {
		return sessionResp{}, err
	}
	resp.Pitch = &pitch
	resp.Slides = slides
	resp.Deck = &deck
	return resp, nil
}

func statusFor(err error) int {
	var stepErr *generator.StepError
	switch {
	case errors.Is(err, generator.ErrMissingCredential):
		return http.StatusPreconditionFailed
	case errors.Is(err, generator.ErrBusy):
		return http.StatusConflict
	case errors.As(err, &stepErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type errorResp struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResp{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Printf("[http] %s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
