package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/manorgames/menace/internal/game"
	"github.com/manorgames/menace/internal/models"
	"github.com/manorgames/menace/internal/sse"
)

// HandleEvents streams lobby updates via Server-Sent Events.
// GET /api/game/events/{code}
func (ctx *Context) HandleEvents(w http.ResponseWriter, r *http.Request) {
	code := codeFromPath(r, "/api/game/events/")

	session, exists := ctx.Engine.Store.Get(code)
	if !exists {
		writeError(w, game.ErrSessionNotFound)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	flusher.Flush()

	// SSE connections are anonymous; membership is not checked because
	// the stream only carries data the lobby endpoint already serves.
	playerID := r.URL.Query().Get("playerId")

	clientChan := make(chan models.SSEMessage, game.SSEBufferSize)
	sse.AddClient(session, clientChan, playerID)
	defer sse.RemoveClient(session, clientChan)

	if debug {
		session.RLock()
		clientCount := session.SSEClientCount()
		session.RUnlock()
		log.Printf("HandleEvents: client connected code=%s now=%d clients", code, clientCount)
	}

	// Send the current lobby view immediately
	if status, err := ctx.Engine.GetLobbyStatus(code); err == nil {
		if payload, err := json.Marshal(status); err == nil {
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventLobbyUpdate, payload)
			flusher.Flush()
		}
	}

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			if debug {
				log.Printf("HandleEvents: client disconnected code=%s", code)
			}
			return
		case msg := <-clientChan:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
