package models

// Player represents a player inside a game session. Players are not
// addressable outside their session; the ID comes from the external
// account service and is only required to be unique within the session.
type Player struct {
	ID                    string   `json:"id"`
	Role                  Role     `json:"role,omitempty"`
	Location              string   `json:"location"`
	Run                   int      `json:"run"`
	Inventory             []string `json:"inventory"`
	IsEliminated          bool     `json:"isEliminated"`
	MenaceAttacksSurvived int      `json:"menaceAttacksSurvived"`
}

// NewPlayer creates a lobby-state player at the manor entrance.
// Role and run are assigned when the game starts.
func NewPlayer(id string) *Player {
	return &Player{
		ID:        id,
		Location:  EntryLocation,
		Inventory: []string{},
	}
}
