package sim

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sim owns the world and the RNG and advances all of today's games one
// event at a time. It assumes one exclusive mutator; see the package doc.
type Sim struct {
	rng    *Rng
	world  *World
	tuning Tuning
}

// New creates a simulation seeded from OS entropy (non-reproducible).
func New() *Sim {
	return &Sim{rng: NewRng(), world: NewWorld(), tuning: DefaultTuning()}
}

// NewSeeded creates a reproducible simulation from two 64-bit seed words.
func NewSeeded(s0, s1 uint64) *Sim {
	return &Sim{rng: SeededRng(s0, s1), world: NewWorld(), tuning: DefaultTuning()}
}

// SetTuning overrides the placeholder probability constants.
func (s *Sim) SetTuning(t Tuning) { s.tuning = t }

// SetPools installs the name and ritual pools consumed by RollPlayer.
func (s *Sim) SetPools(firstNames, lastNames, rituals []string) {
	s.world.FirstNames = firstNames
	s.world.LastNames = lastNames
	s.world.Rituals = rituals
}

// Players returns the player map. Callers must treat it as read-only.
func (s *Sim) Players() map[PlayerID]*Player { return s.world.Players }

// Teams returns the team map. Callers must treat it as read-only.
func (s *Sim) Teams() map[TeamID]*Team { return s.world.Teams }

// GamesToday returns today's games in play order. Callers must treat the
// slice as read-only.
func (s *Sim) GamesToday() []*Game { return s.world.GamesToday }

// Date returns the current simulated date.
func (s *Sim) Date() Date { return s.world.Date }

// RollPlayer generates a new player from the installed pools and commits
// them to the world.
func (s *Sim) RollPlayer() *Player {
	p := GeneratePlayer(s.rng, s.world.FirstNames, s.world.LastNames, s.world.Rituals)
	s.world.Players[p.ID] = p
	s.world.debugCheck()
	return p
}

// precommit validates an entity against the store as it stands, joining
// every problem found.
func (s *Sim) precommit(c checker) error {
	if problems := c.problems(s.world); len(problems) > 0 {
		return errors.Join(problems...)
	}
	return nil
}

// AddPlayer validates a caller-supplied player and commits it. On error the
// world is unchanged.
func (s *Sim) AddPlayer(p *Player) error {
	if err := s.precommit(p); err != nil {
		return err
	}
	s.world.Players[p.ID] = p
	s.world.debugCheck()
	return nil
}

// AddTeam validates a caller-supplied team and commits it. On error the
// world is unchanged.
func (s *Sim) AddTeam(t *Team) error {
	if err := s.precommit(t); err != nil {
		return err
	}
	s.world.Teams[t.ID] = t
	s.world.debugCheck()
	return nil
}

// StartDay validates every incoming game's references, then atomically
// swaps in the new date and game set. The displaced previous date and games
// are returned so the caller can archive them. On error the world is
// unchanged.
func (s *Sim) StartDay(date Date, games []*Game) (Date, []*Game, error) {
	var problems []error
	for _, g := range games {
		problems = append(problems, g.problems(s.world)...)
	}
	if len(problems) > 0 {
		return Date{}, nil, errors.Join(problems...)
	}
	prevDate, prevGames := s.world.Date, s.world.GamesToday
	s.world.Date, s.world.GamesToday = date, games
	s.world.debugCheck()
	return prevDate, prevGames, nil
}

// Tick advances every unfinished game by exactly one event. Each game's
// resolution has exclusive use of the shared RNG and world for its
// duration; there is no interleaving across games.
func (s *Sim) Tick() {
	for _, g := range s.world.GamesToday {
		if g.Finished() {
			continue
		}
		g.LastUpdate = g.tick(s.rng, s.world, s.tuning)
		logrus.Debugf("[s%d d%d] game %s: %s", s.world.Season, s.world.Day, g.ID, g.LastUpdate)
	}
	s.world.debugCheck()
}

// simDoc is the single structured document holding all persisted state:
// the RNG (seed words plus undrawn batch suffix) and the flattened world.
type simDoc struct {
	RNG *Rng `json:"rng"`
	*World
}

func (s *Sim) MarshalJSON() ([]byte, error) {
	return json.Marshal(simDoc{RNG: s.rng, World: s.world})
}

// UnmarshalJSON restores a Sim and re-runs the full consistency check,
// failing with the joined list of problems if any invariant is violated.
func (s *Sim) UnmarshalJSON(data []byte) error {
	doc := simDoc{RNG: &Rng{}, World: NewWorld()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if problems := doc.World.CheckConsistency(); len(problems) > 0 {
		return fmt.Errorf("world failed consistency check: %w", errors.Join(problems...))
	}
	s.rng, s.world = doc.RNG, doc.World
	if s.tuning == (Tuning{}) {
		s.tuning = DefaultTuning()
	}
	return nil
}
