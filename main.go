package main

import (
	"log"
	"net/http"
	"time"

	"github.com/manorgames/menace/internal/config"
	"github.com/manorgames/menace/internal/game"
	"github.com/manorgames/menace/internal/handlers"
	"github.com/manorgames/menace/internal/models"
	"github.com/manorgames/menace/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Surface graph data problems at boot instead of mid-game
	for _, finding := range models.ManorTemplate().Validate() {
		log.Printf("WARN: location graph: %s", finding)
	}

	sessionStore := store.NewSessionStore()
	engine := game.NewEngine(sessionStore, game.NewRng())

	ctx := &handlers.Context{
		Engine:    engine,
		PublicURL: cfg.PublicURL,
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/game/create", ctx.HandleCreate)
	mux.HandleFunc("/api/game/join/", ctx.HandleJoin)
	mux.HandleFunc("/api/game/lobby/", ctx.HandleLobbyStatus)
	mux.HandleFunc("/api/game/start/", ctx.HandleStart)
	mux.HandleFunc("/api/game/end/", ctx.HandleEnd)
	mux.HandleFunc("/api/game/state/", ctx.HandleState)
	mux.HandleFunc("/api/game/qr/", ctx.HandleQR)
	mux.HandleFunc("/api/game/events/", ctx.HandleEvents)

	// Sweep abandoned sessions in the background
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if removed := sessionStore.Sweep(time.Now(), cfg.SessionTTL, cfg.EndedGrace); removed > 0 {
				log.Printf("sweeper removed=%d remaining=%d", removed, sessionStore.Len())
			}
		}
	}()

	log.Printf("Server starting addr=%s publicURL=%s", cfg.Addr, cfg.PublicURL)
	log.Fatal(http.ListenAndServe(cfg.Addr, withCORS(mux)))
}

// withCORS allows the separately hosted frontend to call the API
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
