package sim

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

// World is the in-memory entity store: the current date, every player and
// team keyed by identifier, the games being played today, and the name and
// ritual pools consumed by player generation.
//
// Global invariants, re-checked by CheckConsistency:
//  1. no entity's identifier is nil
//  2. every map key equals the id of its mapped entity
//  3. every team's roster references resolve and contain no duplicates
//  4. every game's team references (winner, both sides) resolve
//  5. every game's player references (at-bat, runners, pitchers) resolve
type World struct {
	Date

	FirstNames []string `json:"first_names"`
	LastNames  []string `json:"last_names"`
	Rituals    []string `json:"rituals"`

	Teams   map[TeamID]*Team     `json:"teams"`
	Players map[PlayerID]*Player `json:"players"`

	GamesToday []*Game `json:"games_today"`
}

// NewWorld creates an empty store.
func NewWorld() *World {
	return &World{
		Teams:   make(map[TeamID]*Team),
		Players: make(map[PlayerID]*Player),
	}
}

// Player returns the player for id. The id must already have passed a
// reference check; a miss means the store's invariants are broken and
// panics rather than returning an error.
func (w *World) Player(id PlayerID) *Player {
	p, ok := w.Players[id]
	if !ok {
		panic(fmt.Sprintf("player %s not found", id))
	}
	return p
}

// Team returns the team for id, under the same contract as Player.
func (w *World) Team(id TeamID) *Team {
	t, ok := w.Teams[id]
	if !ok {
		panic(fmt.Sprintf("team %s not found", id))
	}
	return t
}

// CheckConsistency runs every global invariant and returns all violations
// found, in a stable order. An empty result means the store is consistent.
func (w *World) CheckConsistency() []error {
	var problems []error

	teamIDs := make([]TeamID, 0, len(w.Teams))
	for id := range w.Teams {
		teamIDs = append(teamIDs, id)
	}
	slices.SortFunc(teamIDs, func(a, b TeamID) int { return bytes.Compare(a.UUID[:], b.UUID[:]) })
	for _, id := range teamIDs {
		team := w.Teams[id]
		if team.ID != id {
			problems = append(problems, fmt.Errorf("team map key %s does not match entity id %s", id, team.ID))
		}
		problems = append(problems, team.problems(w)...)
	}

	playerIDs := make([]PlayerID, 0, len(w.Players))
	for id := range w.Players {
		playerIDs = append(playerIDs, id)
	}
	slices.SortFunc(playerIDs, func(a, b PlayerID) int { return bytes.Compare(a.UUID[:], b.UUID[:]) })
	for _, id := range playerIDs {
		player := w.Players[id]
		if player.ID != id {
			problems = append(problems, fmt.Errorf("player map key %s does not match entity id %s", id, player.ID))
		}
		problems = append(problems, player.problems(w)...)
	}

	for _, game := range w.GamesToday {
		problems = append(problems, game.problems(w)...)
	}
	return problems
}

// debugCheck panics on any consistency problem. Compiled to a no-op unless
// the simdebug build tag is set.
func (w *World) debugCheck() {
	if !debugChecks {
		return
	}
	if problems := w.CheckConsistency(); len(problems) > 0 {
		panic("world consistency check failed: " + errors.Join(problems...).Error())
	}
}
