package handlers

import (
	"net/http"
)

// stateResponse wraps the sanitized session view
type stateResponse struct {
	GameState any `json:"gameState"`
}

// HandleState serves the sanitized game state for client sync.
// GET /api/game/state/{code}
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := codeFromPath(r, "/api/game/state/")
	view, err := ctx.Engine.State(code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stateResponse{GameState: view})
}
