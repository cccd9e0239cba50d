package sse

import (
	"log"
	"os"
	"time"

	"github.com/manorgames/menace/internal/game"
	"github.com/manorgames/menace/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// AddClient adds a new SSE client to the session
func AddClient(session *models.GameSession, client chan models.SSEMessage, playerID string) {
	session.Lock()
	defer session.Unlock()

	// Warn if the same player has multiple SSE connections
	dup := 0
	clients := session.GetSSEClients()
	for _, pid := range clients {
		if pid != "" && pid == playerID {
			dup++
		}
	}
	if dup > 0 {
		log.Printf("WARN: player %s opened %d additional SSE connection(s)", playerID, dup)
	}
	session.AddSSEClient(client, playerID)
}

// RemoveClient removes an SSE client from the session
func RemoveClient(session *models.GameSession, client chan models.SSEMessage) {
	session.Lock()
	defer session.Unlock()
	session.RemoveSSEClient(client)
	if debug {
		log.Printf("removeSSEClient: client removed, now have %d total clients", session.SSEClientCount())
	}
}

// Broadcast sends a message to all connected SSE clients
func Broadcast(session *models.GameSession, event, data string) {
	session.RLock()
	// Collect all client channels while holding the lock
	clients := session.GetSSEClients()
	clientCount := len(clients)
	session.RUnlock()

	if debug {
		log.Printf("broadcastSSE: event=%s to %d clients", event, clientCount)
	}

	// Send messages WITHOUT holding the lock
	msg := models.SSEMessage{Event: event, Data: data}
	successCount := 0
	for client := range clients {
		select {
		case client <- msg:
			successCount++
		case <-time.After(time.Duration(game.SSETimeoutSeconds) * time.Second):
			if debug {
				log.Printf("broadcastSSE: timeout sending to client")
			}
		}
	}
	if debug {
		log.Printf("broadcastSSE: sent to %d/%d clients successfully", successCount, clientCount)
	}
}
