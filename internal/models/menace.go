package models

// Menace is the hidden antagonist type assigned to a session.
// It must never reach a client unless the session's IsMenaceDiscovered
// flag is set; see game.Sanitize.
type Menace string

const (
	MenaceGhost    Menace = "Ghost"
	MenaceWerewolf Menace = "Werewolf"
	MenaceAssassin Menace = "Assassin"
)

// Menaces returns a fresh copy of the menace set, safe to shuffle
func Menaces() []Menace {
	return []Menace{MenaceGhost, MenaceWerewolf, MenaceAssassin}
}

// Valid reports whether m is one of the defined menace types
func (m Menace) Valid() bool {
	switch m {
	case MenaceGhost, MenaceWerewolf, MenaceAssassin:
		return true
	}
	return false
}
