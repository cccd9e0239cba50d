package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/manorgames/menace/internal/models"
	"github.com/manorgames/menace/internal/store"
)

// Engine implements the session lifecycle: create, join, lobby status,
// start and end. It owns no transport concerns; handlers sit on top.
type Engine struct {
	Store *store.SessionStore

	rngMu sync.Mutex // rng is shared across sessions and not goroutine-safe
	rng   *rand.Rand

	now func() time.Time
}

// NewEngine creates an engine over the given store and random source
func NewEngine(st *store.SessionStore, rng *rand.Rand) *Engine {
	return &Engine{
		Store: st,
		rng:   rng,
		now:   time.Now,
	}
}

// PlayerSummary is the public per-player view served in lobby status
type PlayerSummary struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role,omitempty"`
}

// LobbyStatus is the pre-start view of a session: ids and roles only,
// never location, inventory or run.
type LobbyStatus struct {
	Players []PlayerSummary `json:"players"`
	IsReady bool            `json:"isReady"`
}

// CreateSession allocates a fresh game code and stores a lobby-state
// session with the host as its sole player.
func (e *Engine) CreateSession(hostID string) (string, error) {
	code, err := e.Store.Allocate(func(code string) *models.GameSession {
		return &models.GameSession{
			Code:           code,
			HostID:         hostID,
			DateCreated:    e.now(),
			TimePeriod:     models.PeriodLobby,
			ActivePlayerID: hostID, // host is active until turn order is drawn
			ActionLog: []models.ActionEntry{
				e.newEntry(models.ActionLobby, "Game created", hostID),
			},
			LocationMap: models.LocationMap{}, // populated at start
			ItemPool:    []string{},
			Players:     []*models.Player{models.NewPlayer(hostID)},
		}
	})
	if err != nil {
		return "", err
	}
	log.Printf("session created code=%s host=%s", code, hostID)
	return code, nil
}

// JoinSession admits a player into a lobby. Checks run in order:
// not-found, already started, full, duplicate, so callers always see
// the most specific applicable error.
func (e *Engine) JoinSession(code, userID string) error {
	session, exists := e.Store.Get(code)
	if !exists {
		return ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.HasStarted() {
		return ErrAlreadyStarted
	}
	if session.HasEnded() {
		return ErrAlreadyEnded
	}
	if len(session.Players) >= MaxPlayers {
		return ErrLobbyFull
	}
	if session.PlayerByID(userID) != nil {
		return ErrDuplicatePlayer
	}

	session.Players = append(session.Players, models.NewPlayer(userID))
	session.ActionLog = append(session.ActionLog,
		e.newEntry(models.ActionLobby, "Player "+userID+" joined", userID))

	log.Printf("player joined code=%s player=%s count=%d", code, userID, len(session.Players))
	return nil
}

// GetLobbyStatus returns the public lobby view for a session
func (e *Engine) GetLobbyStatus(code string) (*LobbyStatus, error) {
	session, exists := e.Store.Get(code)
	if !exists {
		return nil, ErrSessionNotFound
	}

	session.RLock()
	defer session.RUnlock()

	status := &LobbyStatus{
		Players: make([]PlayerSummary, 0, len(session.Players)),
		IsReady: len(session.Players) == MaxPlayers,
	}
	for _, p := range session.Players {
		status.Players = append(status.Players, PlayerSummary{ID: p.ID, Role: p.Role})
	}
	return status, nil
}

// StartSession runs the one-shot randomized setup: roles and runs,
// menace, turn order, location graph clone and item pool. A session
// that has already started is never re-randomized.
func (e *Engine) StartSession(code, requesterID string) error {
	session, exists := e.Store.Get(code)
	if !exists {
		return ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.HostID != requesterID {
		return ErrForbidden
	}
	if session.HasStarted() {
		return ErrAlreadyStarted
	}
	if session.HasEnded() {
		return ErrAlreadyEnded
	}
	if len(session.Players) < MaxPlayers {
		return ErrNotEnoughPlayers
	}

	e.rngMu.Lock()
	defer e.rngMu.Unlock()

	// PickMenace and AssignRoles fail before touching the session, so
	// an error here leaves no partial-start state behind.
	menace, err := PickMenace(e.rng)
	if err != nil {
		return err
	}
	if err := AssignRoles(e.rng, session.Players); err != nil {
		return err
	}

	now := e.now()
	session.Menace = menace
	session.DateStarted = &now
	session.TurnNumber = 1
	session.TimePeriod = models.PeriodDay // turn 1 is always Day

	OrderTurns(e.rng, session.Players)
	session.ActivePlayerID = session.Players[0].ID

	session.LocationMap = models.ManorTemplate().Clone()
	session.ItemPool = DealItemPool(e.rng)

	// The log records the first active player, never the menace.
	session.ActionLog = append(session.ActionLog,
		e.newEntry(models.ActionSetup, "Game started. Menace assigned, roles distributed.", session.ActivePlayerID))

	log.Printf("session started code=%s firstPlayer=%s", code, session.ActivePlayerID)
	return nil
}

// EndSession closes a session. Host only; ending is one-shot. The
// record stays readable until the store sweeps it.
func (e *Engine) EndSession(code, requesterID string) error {
	session, exists := e.Store.Get(code)
	if !exists {
		return ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.HostID != requesterID {
		return ErrForbidden
	}
	if session.HasEnded() {
		return ErrAlreadyEnded
	}

	now := e.now()
	session.DateEnded = &now
	session.ActionLog = append(session.ActionLog,
		e.newEntry(models.ActionEnd, "Game ended by host", requesterID))

	log.Printf("session ended code=%s", code)
	return nil
}

// State returns the sanitized client view of a session. This is the
// only read path handlers may serve; it always passes the sanitizer.
func (e *Engine) State(code string) (*models.ClientView, error) {
	session, exists := e.Store.Get(code)
	if !exists {
		return nil, ErrSessionNotFound
	}

	session.RLock()
	defer session.RUnlock()
	return Sanitize(session), nil
}

// newEntry builds a timestamped action log record
func (e *Engine) newEntry(t models.ActionType, message, playerID string) models.ActionEntry {
	return models.ActionEntry{
		ID:        uuid.New().String(),
		Timestamp: e.now(),
		Type:      t,
		Message:   message,
		PlayerID:  playerID,
	}
}
