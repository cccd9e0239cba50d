package game

const (
	// MaxPlayers is the fixed session size: a lobby holds at most this
	// many players and a game starts with exactly this many
	MaxPlayers = 3

	// SSEBufferSize is the buffer size for SSE message channels
	SSEBufferSize = 10

	// SSETimeoutSeconds is the timeout for sending messages to SSE clients
	SSETimeoutSeconds = 1
)

// InitialItemPool is the fixed multiset of items shuffled into a
// session's pool at start. Duplicates are intentional.
var InitialItemPool = []string{
	"Adrenaline", "Adrenaline", "Old Newspaper", "Old Newspaper",
	"Gun", "Regular Bullet", "Silver Bullet",
	"Paper w/ Ritual Start", "Paper w/ Ritual End",
	"Wood Plank", "Wood Plank", "Salt", "Salt",
	"Trap", "Mystical Trap",
}
