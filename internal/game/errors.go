package game

import "errors"

// User-triggered lifecycle errors. Handlers map these to transport
// status codes; they are never surfaced as raw internal errors.
var (
	ErrSessionNotFound  = errors.New("game session not found")
	ErrForbidden        = errors.New("only the host can perform this action")
	ErrAlreadyStarted   = errors.New("game has already started")
	ErrAlreadyEnded     = errors.New("game has already ended")
	ErrLobbyFull        = errors.New("lobby is full")
	ErrDuplicatePlayer  = errors.New("player already joined")
	ErrNotEnoughPlayers = errors.New("need 3 players to start")
)

// Configuration defects: fewer roles or menace types defined than the
// game needs. These indicate a broken build, not bad user input.
var (
	ErrInsufficientRoles   = errors.New("fewer roles defined than players")
	ErrInsufficientMenaces = errors.New("no menace types defined")
)
