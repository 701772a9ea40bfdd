package sim

import "encoding/json"

// Team owns three ordered rosters of player IDs. Lineup is the batting
// order, Rotation the pitching order, and Shadows the reserve (inert to
// current play logic). RotationSlot persists across games so consecutive
// games rotate starting pitchers.
//
// Invariant: no player appears more than once across the three rosters, and
// every referenced player exists in the world.
type Team struct {
	ID           TeamID     `json:"id"`
	Location     string     `json:"location"`
	Nickname     string     `json:"nickname"`
	Lineup       []PlayerID `json:"lineup"`
	Rotation     []PlayerID `json:"rotation"`
	Shadows      []PlayerID `json:"shadows"`
	RotationSlot int        `json:"rotation_slot"`
}

// Name returns the team's full display name.
func (t *Team) Name() string {
	return t.Location + " " + t.Nickname
}

// UnmarshalJSON accepts the legacy "rotationSlot" key as an alias of
// "rotation_slot".
func (t *Team) UnmarshalJSON(data []byte) error {
	type team Team
	aux := struct {
		*team
		RotationSlot *int `json:"rotationSlot"`
	}{team: (*team)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.RotationSlot != nil {
		t.RotationSlot = *aux.RotationSlot
	}
	return nil
}

func (t *Team) problems(w *World) []error {
	var problems []error
	if t.ID.IsNil() {
		problems = append(problems, ErrNilID)
	}
	counts := make(map[PlayerID]int)
	var order []PlayerID
	for _, roster := range [][]PlayerID{t.Lineup, t.Rotation, t.Shadows} {
		for _, id := range roster {
			if counts[id] == 0 {
				order = append(order, id)
			}
			counts[id]++
		}
	}
	for _, id := range order {
		if _, ok := w.Players[id]; !ok {
			problems = append(problems, &BadReferenceError{Kind: "player", ID: id.ID})
		}
		if counts[id] > 1 {
			problems = append(problems, &DuplicatePlayerError{Player: id})
		}
	}
	return problems
}
