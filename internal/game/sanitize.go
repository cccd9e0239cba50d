package game

import "github.com/manorgames/menace/internal/models"

// Sanitize snapshots a session for external exposure. The menace is
// included only once discovered; no other field is redacted. Every
// read path that leaves the process must go through here.
//
// Must be called with at least the session's read lock held. The
// returned view copies the mutable slices so it can be marshaled
// after the lock is released.
func Sanitize(session *models.GameSession) *models.ClientView {
	view := &models.ClientView{
		Code:               session.Code,
		HostID:             session.HostID,
		DateCreated:        session.DateCreated,
		DateStarted:        session.DateStarted,
		DateEnded:          session.DateEnded,
		IsMenaceDiscovered: session.IsMenaceDiscovered,
		TurnNumber:         session.TurnNumber,
		TimePeriod:         session.TimePeriod,
		ActivePlayerID:     session.ActivePlayerID,
		ActionLog:          append([]models.ActionEntry(nil), session.ActionLog...),
		LocationMap:        session.LocationMap,
		ItemPool:           append([]string(nil), session.ItemPool...),
		Players:            make([]models.Player, 0, len(session.Players)),
	}
	for _, p := range session.Players {
		view.Players = append(view.Players, *p)
	}
	if session.IsMenaceDiscovered && session.Menace != "" {
		menace := session.Menace
		view.Menace = &menace
	}
	return view
}
