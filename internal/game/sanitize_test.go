package game

import (
	"encoding/json"
	"testing"

	"github.com/manorgames/menace/internal/models"
)

func startedSession(t *testing.T) (*Engine, *models.GameSession) {
	t.Helper()
	e := newTestEngine()
	code := fullLobby(t, e)
	if err := e.StartSession(code, "H1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	session, _ := e.Store.Get(code)
	return e, session
}

func TestSanitizeHidesUndiscoveredMenace(t *testing.T) {
	_, session := startedSession(t)

	session.RLock()
	view := Sanitize(session)
	session.RUnlock()

	if view.Menace != nil {
		t.Fatalf("menace exposed while undiscovered: %v", *view.Menace)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := fields["menace"]; present {
		t.Error("menace key present in serialized view while undiscovered")
	}
}

func TestSanitizeExposesDiscoveredMenace(t *testing.T) {
	_, session := startedSession(t)

	session.Lock()
	session.IsMenaceDiscovered = true
	session.Unlock()

	session.RLock()
	view := Sanitize(session)
	menace := session.Menace
	session.RUnlock()

	if view.Menace == nil {
		t.Fatal("discovered menace missing from view")
	}
	if *view.Menace != menace {
		t.Errorf("view menace = %q, want %q", *view.Menace, menace)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := fields["menace"]; !present {
		t.Error("menace key absent from serialized view after discovery")
	}
}

func TestSanitizeSnapshotsMutableState(t *testing.T) {
	e, session := startedSession(t)

	session.RLock()
	view := Sanitize(session)
	playersBefore := len(view.Players)
	logBefore := len(view.ActionLog)
	session.RUnlock()

	if err := e.EndSession(session.Code, "H1"); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	if len(view.Players) != playersBefore || len(view.ActionLog) != logBefore {
		t.Error("view changed after later session mutation")
	}
	if view.DateEnded != nil {
		t.Error("view picked up DateEnded set after the snapshot")
	}
}

func TestSanitizeKeepsPublicFields(t *testing.T) {
	_, session := startedSession(t)

	session.RLock()
	view := Sanitize(session)

	if view.Code != session.Code || view.HostID != session.HostID {
		t.Error("identity fields altered by sanitizer")
	}
	if view.TurnNumber != session.TurnNumber || view.TimePeriod != session.TimePeriod {
		t.Error("turn fields altered by sanitizer")
	}
	if len(view.Players) != len(session.Players) {
		t.Errorf("players: got %d, want %d", len(view.Players), len(session.Players))
	}
	if len(view.ItemPool) != len(session.ItemPool) {
		t.Errorf("item pool: got %d, want %d", len(view.ItemPool), len(session.ItemPool))
	}
	session.RUnlock()
}
