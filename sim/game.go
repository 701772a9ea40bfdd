package sim

import "fmt"

// TeamSelect picks one side of a game.
type TeamSelect int

const (
	Away TeamSelect = iota
	Home
)

// AwayHome pairs a per-side value for the two teams in a game.
type AwayHome[T any] struct {
	Away T `json:"away"`
	Home T `json:"home"`
}

// Select returns a pointer to the chosen side's value.
func (ah *AwayHome[T]) Select(s TeamSelect) *T {
	if s == Home {
		return &ah.Home
	}
	return &ah.Away
}

// Frame is the phase of the 4-step inning cycle.
type Frame int

const (
	Top Frame = iota
	Mid
	Bottom
	End
)

var frameWords = [...]string{"Top", "Mid", "Bottom", "End"}
var frameKeys = [...]string{"top", "mid", "bottom", "end"}

func (f Frame) String() string { return frameWords[f] }

func (f Frame) MarshalText() ([]byte, error) { return []byte(frameKeys[f]), nil }

func (f *Frame) UnmarshalText(b []byte) error {
	for i, key := range frameKeys {
		if key == string(b) {
			*f = Frame(i)
			return nil
		}
	}
	return fmt.Errorf("unknown inning frame %q", b)
}

// Inning cycles Top(n) -> Mid(n) -> Bottom(n) -> End(n) -> Top(n+1). The
// away team bats during Top/Mid and the home team during Bottom/End; Mid
// and End are transitional half-innings whose only tick action is to
// advance and announce the next batting team. The zero value, Top(0), is
// the pre-game sentinel.
type Inning struct {
	Frame  Frame `json:"frame"`
	Number int   `json:"inning"`
}

// Advance moves to the next phase of the cycle.
func (i *Inning) Advance() {
	switch i.Frame {
	case Top:
		i.Frame = Mid
	case Mid:
		i.Frame = Bottom
	case Bottom:
		i.Frame = End
	case End:
		i.Frame, i.Number = Top, i.Number+1
	}
}

// Batting returns the side at bat during this phase.
func (i Inning) Batting() TeamSelect {
	if i.Frame == Top || i.Frame == Mid {
		return Away
	}
	return Home
}

// Fielding returns the side in the field during this phase.
func (i Inning) Fielding() TeamSelect {
	if i.Batting() == Away {
		return Home
	}
	return Away
}

// Baserunner records a runner occupying a base. Base numbers are positive
// integers counted from first base = 1; no two runners may occupy the same
// base.
type Baserunner struct {
	Player PlayerID `json:"player"`
	Base   int      `json:"base"`
}

// GameTeam is one side's in-game state.
type GameTeam struct {
	ID           TeamID   `json:"id"`
	Runs         int      `json:"runs"`
	RunsByInning []int    `json:"runs_by_inning"`
	Pitcher      PlayerID `json:"pitcher,omitzero"` // resolved for the current appearance, nil before first pitch
	LineupSlot   int      `json:"lineup_slot"`
}

// Game is the state of a single game. Winner is set exactly once, at which
// point the game is terminal. LastUpdate holds the most recent play
// description.
type Game struct {
	ID         GameID             `json:"id"`
	Winner     TeamID             `json:"winner,omitzero"`
	LastUpdate string             `json:"last_update"`
	Teams      AwayHome[GameTeam] `json:"teams"`
	Inning
	AtBat       PlayerID     `json:"at_bat,omitzero"`
	Balls       int          `json:"balls"`
	Strikes     int          `json:"strikes"`
	Outs        int          `json:"outs"`
	Baserunners []Baserunner `json:"baserunners"`
}

// NewGame creates a fresh game between the given teams, starting at the
// pre-game sentinel inning.
func NewGame(teams AwayHome[TeamID]) *Game {
	return &Game{
		ID: NewGameID(),
		Teams: AwayHome[GameTeam]{
			Away: GameTeam{ID: teams.Away},
			Home: GameTeam{ID: teams.Home},
		},
	}
}

// Finished reports whether a winner has been decided.
func (g *Game) Finished() bool { return !g.Winner.IsNil() }

// BasesOccupied returns the set of occupied base numbers.
func (g *Game) BasesOccupied() map[int]bool {
	occupied := make(map[int]bool, len(g.Baserunners))
	for _, r := range g.Baserunners {
		occupied[r.Base] = true
	}
	return occupied
}

func (g *Game) problems(w *World) []error {
	var problems []error
	if g.ID.IsNil() {
		problems = append(problems, ErrNilID)
	}
	teamRefs := []TeamID{g.Teams.Away.ID, g.Teams.Home.ID}
	if !g.Winner.IsNil() {
		teamRefs = append([]TeamID{g.Winner}, teamRefs...)
	}
	for _, id := range teamRefs {
		if _, ok := w.Teams[id]; !ok {
			problems = append(problems, &BadReferenceError{Kind: "team", ID: id.ID})
		}
	}
	var playerRefs []PlayerID
	if !g.AtBat.IsNil() {
		playerRefs = append(playerRefs, g.AtBat)
	}
	for _, r := range g.Baserunners {
		playerRefs = append(playerRefs, r.Player)
	}
	for _, side := range []*GameTeam{&g.Teams.Away, &g.Teams.Home} {
		if !side.Pitcher.IsNil() {
			playerRefs = append(playerRefs, side.Pitcher)
		}
	}
	for _, id := range playerRefs {
		if _, ok := w.Players[id]; !ok {
			problems = append(problems, &BadReferenceError{Kind: "player", ID: id.ID})
		}
	}
	seen := make(map[int]bool)
	for _, r := range g.Baserunners {
		if seen[r.Base] {
			problems = append(problems, fmt.Errorf("game %s: base %d occupied by more than one runner", g.ID, r.Base))
		}
		seen[r.Base] = true
	}
	return problems
}
