package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/manorgames/menace/internal/models"
)

// NewRng creates the random source used for game setup, seeded from
// crypto/rand with a time fallback. Tests pass their own seeded source.
func NewRng() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// Shuffle permutes s in place with a Fisher-Yates pass. Sequences of
// length 0 or 1 are left untouched.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// AssignRoles deals one role per player from a shuffled copy of the
// role set and applies each role's starting run. It either assigns
// every player or assigns nothing.
func AssignRoles(rng *rand.Rand, players []*models.Player) error {
	roles := models.Roles()
	if len(roles) < len(players) {
		return ErrInsufficientRoles
	}
	Shuffle(rng, roles)
	for i, p := range players {
		p.Role = roles[i]
		p.Run = roles[i].StartingRun()
	}
	return nil
}

// PickMenace selects the session's menace from a shuffled copy of the
// menace set, never the shared set itself.
func PickMenace(rng *rand.Rand) (models.Menace, error) {
	menaces := models.Menaces()
	if len(menaces) == 0 {
		return "", ErrInsufficientMenaces
	}
	Shuffle(rng, menaces)
	return menaces[0], nil
}

// DealItemPool returns a shuffled copy of the initial item pool,
// duplicates preserved. Items are not dealt to players here.
func DealItemPool(rng *rand.Rand) []string {
	pool := make([]string, len(InitialItemPool))
	copy(pool, InitialItemPool)
	Shuffle(rng, pool)
	return pool
}

// OrderTurns shuffles the players into their initial turn order
func OrderTurns(rng *rand.Rand, players []*models.Player) {
	Shuffle(rng, players)
}
