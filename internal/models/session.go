package models

import (
	"sync"
	"time"
)

// ActionType tags entries in a session's action log
type ActionType string

const (
	ActionLobby ActionType = "LOBBY"
	ActionSetup ActionType = "SETUP"
	ActionEnd   ActionType = "END"
)

// ActionEntry is one record of the append-only audit trail
type ActionEntry struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Type      ActionType `json:"type"`
	Message   string     `json:"message"`
	PlayerID  string     `json:"playerId,omitempty"`
}

// GameSession represents one active game, keyed by its code.
// The Menace field is deliberately excluded from JSON: external reads
// go through game.Sanitize, which decides whether to expose it.
type GameSession struct {
	Code        string     `json:"gameCode"`
	HostID      string     `json:"hostId"`
	DateCreated time.Time  `json:"dateCreated"`
	DateStarted *time.Time `json:"dateStarted"`
	DateEnded   *time.Time `json:"dateEnded"`

	Menace             Menace `json:"-"`
	IsMenaceDiscovered bool   `json:"isMenaceDiscovered"`

	TurnNumber     int        `json:"turnNumber"`
	TimePeriod     TimePeriod `json:"timePeriod"`
	ActivePlayerID string     `json:"activePlayerId"`

	ActionLog   []ActionEntry `json:"actionLog"`
	LocationMap LocationMap   `json:"locationMap"`
	ItemPool    []string      `json:"itemPool"`
	Players     []*Player     `json:"players"`

	mu         sync.RWMutex
	sseClients map[chan SSEMessage]string // channel -> playerID
}

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "lobby-update", "game-started")
	Data  string // JSON payload to send
}

// Lock acquires the session's write lock
func (s *GameSession) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's write lock
func (s *GameSession) Unlock() {
	s.mu.Unlock()
}

// RLock acquires the session's read lock
func (s *GameSession) RLock() {
	s.mu.RLock()
}

// RUnlock releases the session's read lock
func (s *GameSession) RUnlock() {
	s.mu.RUnlock()
}

// HasStarted reports whether setup has run (must hold at least RLock)
func (s *GameSession) HasStarted() bool {
	return s.DateStarted != nil
}

// HasEnded reports whether the session was closed (must hold at least RLock)
func (s *GameSession) HasEnded() bool {
	return s.DateEnded != nil
}

// PlayerByID returns the player with the given id, or nil (must hold at least RLock)
func (s *GameSession) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// LastTouched returns the timestamp of the newest action log entry,
// falling back to the creation time (must hold at least RLock)
func (s *GameSession) LastTouched() time.Time {
	if len(s.ActionLog) == 0 {
		return s.DateCreated
	}
	return s.ActionLog[len(s.ActionLog)-1].Timestamp
}

// GetSSEClients returns a copy of the SSE clients map (must be called with lock held)
func (s *GameSession) GetSSEClients() map[chan SSEMessage]string {
	clients := make(map[chan SSEMessage]string, len(s.sseClients))
	for k, v := range s.sseClients {
		clients[k] = v
	}
	return clients
}

// AddSSEClient adds a new SSE client to the session
func (s *GameSession) AddSSEClient(client chan SSEMessage, playerID string) {
	if s.sseClients == nil {
		s.sseClients = make(map[chan SSEMessage]string)
	}
	s.sseClients[client] = playerID
}

// RemoveSSEClient removes an SSE client from the session
func (s *GameSession) RemoveSSEClient(client chan SSEMessage) {
	delete(s.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (s *GameSession) SSEClientCount() int {
	return len(s.sseClients)
}
