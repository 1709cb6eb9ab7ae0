// Package web provides the HTTP server and dashboard UI for the studio.
package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/creatorlens/influencer-studio/internal/extract"
	"github.com/creatorlens/influencer-studio/internal/insights"
	"github.com/creatorlens/influencer-studio/internal/onboarding"
	"github.com/creatorlens/influencer-studio/internal/openai"
	"github.com/creatorlens/influencer-studio/internal/qloo"
	"github.com/creatorlens/influencer-studio/internal/sounds"
)

const (
	sessionCookieName = "session_id"
	sessionTTL        = 24 * time.Hour
)

// Session holds one visitor's onboarding conversation and analysis results.
// Result fields are replaced whole, never edited in place.
type Session struct {
	ID          string
	Flow        *onboarding.Flow
	Profile     onboarding.Profile
	Bundle      *insights.Bundle
	Geography   *qloo.CountryInsights
	Topics      *qloo.RegionTrends
	Viral       *openai.ViralPrediction
	Strategy    string
	Sounds      []sounds.Sound
	SoundGroups []sounds.MomentumGroup
	Brands      []extract.Brand
	CreatedAt   time.Time
}

// Analyzed reports whether the onboarding finished and insights were built.
func (s *Session) Analyzed() bool {
	return s.Bundle != nil
}

// SessionStore manages visitor sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with a fresh onboarding conversation.
func (s *SessionStore) Create() *Session {
	session := &Session{
		ID:        uuid.NewString(),
		Flow:      onboarding.NewFlow(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}

	// Check if session has expired
	if time.Since(session.CreatedAt) > sessionTTL {
		return nil
	}

	return session
}

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// SetAnalysis records the completed profile and its insight bundle.
func (s *SessionStore) SetAnalysis(id string, profile onboarding.Profile, bundle *insights.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Profile = profile
		session.Bundle = bundle
	}
}

// SetGeography records the audience geography panel.
func (s *SessionStore) SetGeography(id string, geo *qloo.CountryInsights, topics *qloo.RegionTrends) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Geography = geo
		session.Topics = topics
	}
}

// SetViral replaces the session's viral prediction panel.
func (s *SessionStore) SetViral(id string, prediction *openai.ViralPrediction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Viral = prediction
	}
}

// SetStrategy replaces the session's growth strategy panel.
func (s *SessionStore) SetStrategy(id, strategy string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Strategy = strategy
	}
}

// SetSounds replaces the session's sound search results and their momentum
// grouping.
func (s *SessionStore) SetSounds(id string, results []sounds.Sound, groups []sounds.MomentumGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Sounds = results
		session.SoundGroups = groups
	}
}

// SetBrands replaces the session's brand finder results.
func (s *SessionStore) SetBrands(id string, results []extract.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Brands = results
	}
}

// ResetAnalysis discards the session's conversation and every result panel.
func (s *SessionStore) ResetAnalysis(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return
	}

	session.Flow.Reset()
	session.Profile = onboarding.Profile{}
	session.Bundle = nil
	session.Geography = nil
	session.Topics = nil
	session.Viral = nil
	session.Strategy = ""
	session.Sounds = nil
	session.SoundGroups = nil
	session.Brands = nil
}

// GetFromRequest extracts the session from the request cookie.
func (s *SessionStore) GetFromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	return s.Get(cookie.Value)
}

// SetCookie sets the session cookie on the response.
func (s *SessionStore) SetCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
}

// ClearCookie removes the session cookie from the response.
func (s *SessionStore) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
