package models

// TimePeriod represents the phase of the current turn
type TimePeriod string

const (
	PeriodLobby TimePeriod = "Lobby"
	PeriodDay   TimePeriod = "Day"
	PeriodNight TimePeriod = "Night"
)
