package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/manorgames/menace/internal/sse"
)

// HandleCreate creates a new game session for the host.
// POST /api/game/create {hostId}
func (ctx *Context) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := decodeBody(r)
	if err != nil || req.HostID == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Host ID is required to create a game."})
		return
	}

	code, err := ctx.Engine.CreateSession(req.HostID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{GameCode: code})
}

// HandleJoin admits a player into an existing lobby.
// POST /api/game/join/{code} {userId}
func (ctx *Context) HandleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := codeFromPath(r, "/api/game/join/")
	req, err := decodeBody(r)
	if err != nil || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "User ID is required to join a game."})
		return
	}

	if err := ctx.Engine.JoinSession(code, req.UserID); err != nil {
		writeError(w, err)
		return
	}

	ctx.broadcastLobbyUpdate(code)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Joined game " + code})
}

// HandleLobbyStatus returns the public lobby view.
// GET /api/game/lobby/{code}
func (ctx *Context) HandleLobbyStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := codeFromPath(r, "/api/game/lobby/")
	status, err := ctx.Engine.GetLobbyStatus(code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// broadcastLobbyUpdate pushes the current lobby status to SSE clients
func (ctx *Context) broadcastLobbyUpdate(code string) {
	session, exists := ctx.Engine.Store.Get(code)
	if !exists {
		return
	}
	status, err := ctx.Engine.GetLobbyStatus(code)
	if err != nil {
		return
	}
	payload, err := json.Marshal(status)
	if err != nil {
		log.Printf("broadcastLobbyUpdate: marshal failed: %v", err)
		return
	}
	sse.Broadcast(session, sse.EventLobbyUpdate, string(payload))
}
