package models

import "fmt"

// Stage identifies which part of the manor a location belongs to
type Stage string

const (
	StageOne     Stage = "STAGE1"
	StageTwo     Stage = "STAGE2"
	StageOutside Stage = "OUTSIDE"
)

// EntryLocation is the default spawn node for every player
const EntryLocation = "Front Door"

// Location is one node of the manor graph. Adjacency is directed:
// an edge listed here only guarantees traversal in this direction.
type Location struct {
	Stage             Stage    `json:"pool"`
	DefenseAllowed    bool     `json:"defenseAllowed"`
	AdjacentLocations []string `json:"adjacentLocations"`
}

// LocationMap maps node names to their graph entries
type LocationMap map[string]*Location

// manorTemplate is the static location graph. It is shared read-only
// data; sessions must only ever hold a Clone of it.
var manorTemplate = LocationMap{
	// Stage 1
	"Front Door":       {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Front Lawn", "Stairwell", "Dining Room"}},
	"Dining Room":      {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Front Door", "Kitchen", "Library"}},
	"Kitchen":          {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Dining Room", "Servant Quarters"}},
	"Library":          {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Dining Room", "Design Studio", "Sitting Room"}},
	"Servant Quarters": {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Kitchen", "Wine Cellar", "Master Bedroom"}},
	"Wine Cellar":      {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Servant Quarters", "Design Studio"}},
	"Design Studio":    {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Library", "Wine Cellar"}},
	"Sitting Room":     {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Library", "Stairwell"}},
	"Stairwell":        {Stage: StageOne, DefenseAllowed: true, AdjacentLocations: []string{"Front Door", "Sitting Room", "Office"}},

	// Stage 2
	"Master Bedroom": {Stage: StageTwo, DefenseAllowed: true, AdjacentLocations: []string{"Servant Quarters", "Child Bedroom"}},
	"Child Bedroom":  {Stage: StageTwo, DefenseAllowed: true, AdjacentLocations: []string{"Master Bedroom", "Visit Bedroom"}},
	"Visit Bedroom":  {Stage: StageTwo, DefenseAllowed: true, AdjacentLocations: []string{"Child Bedroom", "Office"}},
	"Office":         {Stage: StageTwo, DefenseAllowed: true, AdjacentLocations: []string{"Stairwell", "Visit Bedroom"}},

	// Outside
	"Front Lawn":   {Stage: StageOutside, DefenseAllowed: false, AdjacentLocations: []string{"Front Door", "Back Garden"}},
	"Back Garden":  {Stage: StageOutside, DefenseAllowed: false, AdjacentLocations: []string{"Front Lawn", "Workshop", "Lake Shore"}},
	"Workshop":     {Stage: StageOutside, DefenseAllowed: false, AdjacentLocations: []string{"Back Garden", "Forest Entry"}},
	"Lake Shore":   {Stage: StageOutside, DefenseAllowed: false, AdjacentLocations: []string{"Back Garden"}},
	"Forest Entry": {Stage: StageOutside, DefenseAllowed: false, AdjacentLocations: []string{"Workshop"}},
}

// ManorTemplate returns the shared location graph template.
// Callers must not mutate it; attach Clone() results to sessions.
func ManorTemplate() LocationMap {
	return manorTemplate
}

// Clone returns a deep copy of the map so per-session mutation can
// never leak into the template or another session.
func (m LocationMap) Clone() LocationMap {
	clone := make(LocationMap, len(m))
	for name, loc := range m {
		adjacent := make([]string, len(loc.AdjacentLocations))
		copy(adjacent, loc.AdjacentLocations)
		clone[name] = &Location{
			Stage:             loc.Stage,
			DefenseAllowed:    loc.DefenseAllowed,
			AdjacentLocations: adjacent,
		}
	}
	return clone
}

// Validate checks the graph data and returns findings instead of
// fixing them: adjacency targets that do not exist, and one-way edges
// (the data is not guaranteed symmetric, so asymmetry is reported,
// never silently repaired).
func (m LocationMap) Validate() []string {
	var findings []string
	if _, ok := m[EntryLocation]; !ok {
		findings = append(findings, fmt.Sprintf("entry location %q missing from graph", EntryLocation))
	}
	for name, loc := range m {
		for _, target := range loc.AdjacentLocations {
			other, ok := m[target]
			if !ok {
				findings = append(findings, fmt.Sprintf("%s lists unknown adjacent location %q", name, target))
				continue
			}
			back := false
			for _, ret := range other.AdjacentLocations {
				if ret == name {
					back = true
					break
				}
			}
			if !back {
				findings = append(findings, fmt.Sprintf("one-way edge: %s -> %s has no return edge", name, target))
			}
		}
	}
	return findings
}
