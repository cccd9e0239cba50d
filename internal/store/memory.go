package store

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/manorgames/menace/internal/models"
)

const (
	// CodeLength is the starting length of generated game codes
	CodeLength = 4

	// maxCodeLength bounds the retry-with-growth strategy; running out
	// of codes at this length means the process is hosting far more
	// sessions than it should and is treated as fatal by the caller
	maxCodeLength = 8

	// attemptsPerLength is how many collisions we tolerate before
	// growing the code by one character
	attemptsPerLength = 16

	// CodeChars are the characters used for game codes (excluding ambiguous chars)
	CodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ErrCodeSpaceExhausted is returned when no unique game code could be
// generated. This is a configuration defect, not a user error.
var ErrCodeSpaceExhausted = errors.New("store: game code space exhausted")

// SessionStore owns the process-wide game code -> session mapping.
// The store lock only guards the map itself; per-session mutation is
// serialized by each session's own lock, so operations on different
// codes never block each other.
type SessionStore struct {
	sessions map[string]*models.GameSession
	mu       sync.RWMutex
}

// NewSessionStore creates a new session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.GameSession),
	}
}

// Get retrieves a session by code
func (s *SessionStore) Get(code string) (*models.GameSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[code]
	return session, exists
}

// Allocate generates a unique game code, builds the session for it and
// inserts it, all inside one critical section so a concurrent Allocate
// can never claim the same code. On collision it retries, growing the
// code length after repeated failures.
func (s *SessionStore) Allocate(build func(code string) *models.GameSession) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for length := CodeLength; length <= maxCodeLength; length++ {
		for attempt := 0; attempt < attemptsPerLength; attempt++ {
			code := randomCode(length)
			if _, exists := s.sessions[code]; exists {
				continue
			}
			s.sessions[code] = build(code)
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

// Delete removes a session
func (s *SessionStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, code)
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes abandoned sessions: anything untouched for longer than
// ttl, and ended sessions older than endedGrace. Returns the number of
// sessions removed. Session locks are taken outside the store lock to
// keep lock ordering consistent with the lifecycle operations.
func (s *SessionStore) Sweep(now time.Time, ttl, endedGrace time.Duration) int {
	s.mu.RLock()
	candidates := make(map[string]*models.GameSession, len(s.sessions))
	for code, session := range s.sessions {
		candidates[code] = session
	}
	s.mu.RUnlock()

	var expired []string
	for code, session := range candidates {
		session.RLock()
		ended := session.HasEnded() && now.Sub(*session.DateEnded) > endedGrace
		stale := now.Sub(session.LastTouched()) > ttl
		session.RUnlock()
		if ended || stale {
			expired = append(expired, code)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, code := range expired {
		if _, exists := s.sessions[code]; exists {
			delete(s.sessions, code)
			removed++
		}
	}
	return removed
}

// randomCode creates a random game code of the given length
func randomCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(CodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = CodeChars[rand.Intn(len(CodeChars))]
			continue
		}
		code[i] = CodeChars[n.Int64()]
	}
	return string(code)
}
