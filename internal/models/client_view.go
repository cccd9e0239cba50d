package models

import "time"

// ClientView is the sanitized snapshot of a session served to clients.
// Menace is a pointer so the JSON key is absent entirely while the
// menace is undiscovered, rather than leaking an empty value.
type ClientView struct {
	Code        string     `json:"gameCode"`
	HostID      string     `json:"hostId"`
	DateCreated time.Time  `json:"dateCreated"`
	DateStarted *time.Time `json:"dateStarted"`
	DateEnded   *time.Time `json:"dateEnded"`

	Menace             *Menace `json:"menace,omitempty"`
	IsMenaceDiscovered bool    `json:"isMenaceDiscovered"`

	TurnNumber     int        `json:"turnNumber"`
	TimePeriod     TimePeriod `json:"timePeriod"`
	ActivePlayerID string     `json:"activePlayerId"`

	ActionLog   []ActionEntry `json:"actionLog"`
	LocationMap LocationMap   `json:"locationMap"`
	ItemPool    []string      `json:"itemPool"`
	Players     []Player      `json:"players"`
}
