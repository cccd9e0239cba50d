package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/manorgames/menace/internal/game"
)

// HandleQR serves a QR code encoding the join link for a session, for
// showing on the host's screen.
// GET /api/game/qr/{code}
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := codeFromPath(r, "/api/game/qr/")
	if _, exists := ctx.Engine.Store.Get(code); !exists {
		writeError(w, game.ErrSessionNotFound)
		return
	}

	joinURL := ctx.PublicURL + "/join/" + code
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
