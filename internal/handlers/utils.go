package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/manorgames/menace/internal/game"
)

// idRequest is the shared request body for lifecycle calls
type idRequest struct {
	HostID string `json:"hostId"`
	UserID string `json:"userId"`
}

// messageResponse is the standard envelope for plain responses
type messageResponse struct {
	Message  string `json:"message"`
	GameCode string `json:"gameCode,omitempty"`
}

// codeFromPath extracts the game code path segment after prefix
func codeFromPath(r *http.Request, prefix string) string {
	code := strings.TrimPrefix(r.URL.Path, prefix)
	code = strings.Trim(code, "/")
	return strings.ToUpper(code)
}

// decodeBody parses a JSON request body into an idRequest
func decodeBody(r *http.Request) (idRequest, error) {
	var req idRequest
	if r.Body == nil {
		return req, errors.New("empty body")
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

// writeJSON marshals v into the response with the given status
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: encode failed: %v", err)
	}
}

// writeError maps engine errors to transport status codes. Unknown
// errors are configuration defects and must not leak details.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrAlreadyStarted),
		errors.Is(err, game.ErrAlreadyEnded),
		errors.Is(err, game.ErrLobbyFull),
		errors.Is(err, game.ErrDuplicatePlayer),
		errors.Is(err, game.ErrNotEnoughPlayers):
		status = http.StatusBadRequest
	default:
		log.Printf("writeError: internal error: %v", err)
		message = "internal server error"
	}

	writeJSON(w, status, messageResponse{Message: message})
}
