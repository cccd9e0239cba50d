package handlers

import (
	"os"

	"github.com/manorgames/menace/internal/game"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Context holds shared application dependencies
type Context struct {
	Engine *game.Engine

	// PublicURL is the externally reachable base URL, used to build
	// the join links encoded into QR codes.
	PublicURL string
}
