package handlers

import (
	"log"
	"net/http"

	"github.com/manorgames/menace/internal/sse"
)

// HandleStart triggers the one-shot randomized game setup.
// POST /api/game/start/{code} {hostId}
//
// The full session is deliberately not returned here; clients fetch
// the sanitized state afterwards.
func (ctx *Context) HandleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := codeFromPath(r, "/api/game/start/")
	req, err := decodeBody(r)
	if err != nil || req.HostID == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Host ID is required to start a game."})
		return
	}

	if debug {
		log.Printf("HandleStart: code=%s requester=%s", code, req.HostID)
	}

	if err := ctx.Engine.StartSession(code, req.HostID); err != nil {
		writeError(w, err)
		return
	}

	if session, exists := ctx.Engine.Store.Get(code); exists {
		sse.Broadcast(session, sse.EventGameStarted, `{"gameCode":"`+code+`"}`)
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message:  "Game started successfully. Fetching initial state...",
		GameCode: code,
	})
}

// HandleEnd closes a session. Host only.
// POST /api/game/end/{code} {hostId}
func (ctx *Context) HandleEnd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := codeFromPath(r, "/api/game/end/")
	req, err := decodeBody(r)
	if err != nil || req.HostID == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Host ID is required to end a game."})
		return
	}

	if err := ctx.Engine.EndSession(code, req.HostID); err != nil {
		writeError(w, err)
		return
	}

	if session, exists := ctx.Engine.Store.Get(code); exists {
		sse.Broadcast(session, sse.EventGameEnded, `{"gameCode":"`+code+`"}`)
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Game ended.", GameCode: code})
}
