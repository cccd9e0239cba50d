package sse

// SSE event type constants
const (
	EventLobbyUpdate = "lobby-update"
	EventGameStarted = "game-started"
	EventGameEnded   = "game-ended"
)
