package sim

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededSim builds a reproducible two-team sim through the public
// surface: pools installed, players rolled from the sim's own RNG, one game
// started.
func newSeededSim(t *testing.T) *Sim {
	t.Helper()
	s := NewSeeded(2935246629125674131, 766864515362452477)
	s.SetPools(
		[]string{"Avila", "Basil", "Cornelius", "Dot", "Esme", "Fitzgerald"},
		[]string{"Bramble", "Casket", "Drumline", "Eventide", "Froth"},
		[]string{"Counting backwards from nine", "Whispering to the foul pole"},
	)

	build := func(location, nickname string) *Team {
		team := &Team{ID: NewTeamID(), Location: location, Nickname: nickname}
		for i := 0; i < 9; i++ {
			team.Lineup = append(team.Lineup, s.RollPlayer().ID)
		}
		for i := 0; i < 3; i++ {
			team.Rotation = append(team.Rotation, s.RollPlayer().ID)
		}
		require.NoError(t, s.AddTeam(team))
		return team
	}
	away := build("Duststorm", "Prospectors")
	home := build("Harbor", "Lampreys")

	game := NewGame(AwayHome[TeamID]{Away: away.ID, Home: home.ID})
	_, _, err := s.StartDay(Date{Season: 1, Day: 1}, []*Game{game})
	require.NoError(t, err)
	return s
}

func TestSim_FullGameRunsToCompletion(t *testing.T) {
	s := newSeededSim(t)

	g := s.GamesToday()[0]
	for tick := 0; tick < 100000 && !g.Finished(); tick++ {
		s.Tick()
	}

	require.True(t, g.Finished(), "game did not finish")
	assert.True(t, strings.HasPrefix(g.LastUpdate, "Game over."), "got %q", g.LastUpdate)
	assert.GreaterOrEqual(t, g.Number, 9)
	assert.Empty(t, s.world.CheckConsistency())

	// Both rotation cursors advanced for the next start.
	assert.Equal(t, 1, s.world.Team(g.Teams.Away.ID).RotationSlot)
	assert.Equal(t, 1, s.world.Team(g.Teams.Home.ID).RotationSlot)
}

func TestSim_TickSkipsFinishedGames(t *testing.T) {
	s := newSeededSim(t)

	g := s.GamesToday()[0]
	for tick := 0; tick < 100000 && !g.Finished(); tick++ {
		s.Tick()
	}
	require.True(t, g.Finished())

	final := g.LastUpdate
	s.Tick()
	assert.Equal(t, final, g.LastUpdate)
}

func TestSim_SerializeRoundTripPreservesFuture(t *testing.T) {
	// GIVEN a sim mid-game, WHEN we serialize and restore it, THEN the
	// restored copy replays the exact same future as the original.
	s := newSeededSim(t)
	for i := 0; i < 100; i++ {
		s.Tick()
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	restored := &Sim{}
	require.NoError(t, json.Unmarshal(data, restored))

	for i := 0; i < 200; i++ {
		s.Tick()
		restored.Tick()
		require.Equal(t, s.GamesToday()[0].LastUpdate, restored.GamesToday()[0].LastUpdate,
			"divergence at tick %d", i)
	}

	a, err := json.Marshal(s)
	require.NoError(t, err)
	b, err := json.Marshal(restored)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSim_DeserializeRejectsInconsistentWorld(t *testing.T) {
	s := newSeededSim(t)
	data, err := json.Marshal(s)
	require.NoError(t, err)

	// Drop one rostered player from the document, leaving the team's
	// reference dangling.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	players := doc["players"].(map[string]any)
	var victim string
	for id := range players {
		victim = id
		break
	}
	delete(players, victim)
	mangled, err := json.Marshal(doc)
	require.NoError(t, err)

	restored := &Sim{}
	err = json.Unmarshal(mangled, restored)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consistency check")
	assert.Contains(t, err.Error(), "dangling player reference")
}

func TestSim_DocumentContainsRngAndFlattenedWorld(t *testing.T) {
	s := newSeededSim(t)
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"rng", "season", "day", "teams", "players", "games_today", "first_names"} {
		_, ok := doc[key]
		assert.True(t, ok, "document missing %q key", key)
	}
}

func TestSim_RollPlayerUsesPools(t *testing.T) {
	s := NewSeeded(11, 13)
	s.SetPools([]string{"Peanut"}, []string{"Rosewater"}, []string{"Polishing the rosin bag"})

	p := s.RollPlayer()

	assert.Equal(t, "Peanut Rosewater", p.Name)
	assert.Equal(t, "Polishing the rosin bag", p.Ritual)
	assert.Equal(t, p, s.Players()[p.ID])
}

func TestSim_MultipleGamesResolveIndependently(t *testing.T) {
	s := NewSeeded(17, 19)
	s.SetPools([]string{"Knox"}, []string{"Kettle"}, nil)

	var teams []*Team
	for i := 0; i < 4; i++ {
		team := &Team{ID: NewTeamID(), Location: "Loc", Nickname: fmt.Sprintf("Nine %d", i)}
		for j := 0; j < 9; j++ {
			team.Lineup = append(team.Lineup, s.RollPlayer().ID)
		}
		team.Rotation = append(team.Rotation, s.RollPlayer().ID)
		require.NoError(t, s.AddTeam(team))
		teams = append(teams, team)
	}
	games := []*Game{
		NewGame(AwayHome[TeamID]{Away: teams[0].ID, Home: teams[1].ID}),
		NewGame(AwayHome[TeamID]{Away: teams[2].ID, Home: teams[3].ID}),
	}
	_, _, err := s.StartDay(Date{Season: 1, Day: 1}, games)
	require.NoError(t, err)

	// One event per game per tick.
	s.Tick()
	assert.Equal(t, "Play ball!", games[0].LastUpdate)
	assert.Equal(t, "Play ball!", games[1].LastUpdate)

	for tick := 0; tick < 200000 && !(games[0].Finished() && games[1].Finished()); tick++ {
		s.Tick()
	}
	assert.True(t, games[0].Finished())
	assert.True(t, games[1].Finished())
	assert.Empty(t, s.world.CheckConsistency())
}
