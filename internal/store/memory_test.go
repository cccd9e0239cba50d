package store

import (
	"sync"
	"testing"
	"time"

	"github.com/manorgames/menace/internal/models"
)

func buildSession(code string) *models.GameSession {
	return &models.GameSession{
		Code:        code,
		HostID:      "H1",
		DateCreated: time.Now(),
	}
}

func TestAllocateAndGet(t *testing.T) {
	s := NewSessionStore()

	code, err := s.Allocate(buildSession)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(code) != CodeLength {
		t.Errorf("code %q has length %d, want %d", code, len(code), CodeLength)
	}
	for _, c := range code {
		found := false
		for _, valid := range CodeChars {
			if c == valid {
				found = true
			}
		}
		if !found {
			t.Errorf("code %q contains invalid character %q", code, c)
		}
	}

	session, exists := s.Get(code)
	if !exists {
		t.Fatal("allocated session not retrievable")
	}
	if session.Code != code {
		t.Errorf("session code %q, want %q", session.Code, code)
	}

	if _, exists := s.Get("NOPE"); exists {
		t.Error("Get returned a session for an unknown code")
	}
}

func TestAllocateUniqueUnderConcurrency(t *testing.T) {
	s := NewSessionStore()

	const n = 200
	var wg sync.WaitGroup
	codes := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := s.Allocate(buildSession)
			if err != nil {
				t.Errorf("Allocate: %v", err)
				return
			}
			codes <- code
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool)
	for code := range codes {
		if seen[code] {
			t.Errorf("code %q allocated twice", code)
		}
		seen[code] = true
	}
	if s.Len() != n {
		t.Errorf("store has %d sessions, want %d", s.Len(), n)
	}
}

func TestDelete(t *testing.T) {
	s := NewSessionStore()
	code, _ := s.Allocate(buildSession)

	s.Delete(code)
	if _, exists := s.Get(code); exists {
		t.Error("session still present after Delete")
	}
}

func TestSweepRemovesStaleSessions(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()

	stale, _ := s.Allocate(func(code string) *models.GameSession {
		return &models.GameSession{Code: code, DateCreated: now.Add(-48 * time.Hour)}
	})
	fresh, _ := s.Allocate(func(code string) *models.GameSession {
		return &models.GameSession{Code: code, DateCreated: now.Add(-time.Minute)}
	})
	endedAt := now.Add(-2 * time.Hour)
	ended, _ := s.Allocate(func(code string) *models.GameSession {
		return &models.GameSession{Code: code, DateCreated: now.Add(-3 * time.Hour), DateEnded: &endedAt}
	})

	removed := s.Sweep(now, 24*time.Hour, time.Hour)
	if removed != 2 {
		t.Errorf("Sweep removed %d, want 2", removed)
	}
	if _, exists := s.Get(stale); exists {
		t.Error("stale session survived the sweep")
	}
	if _, exists := s.Get(ended); exists {
		t.Error("ended session survived past its grace period")
	}
	if _, exists := s.Get(fresh); !exists {
		t.Error("fresh session was swept")
	}
}

func TestSweepKeepsActiveSessions(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()

	// Created long ago but touched recently through the action log
	code, _ := s.Allocate(func(code string) *models.GameSession {
		return &models.GameSession{
			Code:        code,
			DateCreated: now.Add(-48 * time.Hour),
			ActionLog: []models.ActionEntry{
				{Timestamp: now.Add(-time.Minute), Type: models.ActionLobby},
			},
		}
	})

	if removed := s.Sweep(now, 24*time.Hour, time.Hour); removed != 0 {
		t.Errorf("Sweep removed %d, want 0", removed)
	}
	if _, exists := s.Get(code); !exists {
		t.Error("recently touched session was swept")
	}
}
