package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	sim "github.com/sandlot-sim/sandlot-sim/sim"
)

// Built-in pools for demo leagues. Real deployments feed their own lists
// through the JSON fixtures instead.
var (
	demoFirstNames = []string{
		"Avila", "Basil", "Cornelius", "Dot", "Esme", "Fitzgerald", "Greer",
		"Hollis", "Igneous", "Juniper", "Knox", "Lowe", "Mints", "Nerissa",
		"Oriole", "Peanut", "Quitter", "Rumor", "Socks", "Thistle",
	}
	demoLastNames = []string{
		"Bramble", "Casket", "Drumline", "Eventide", "Froth", "Grapple",
		"Hastings", "Ixcatl", "Jubilee", "Kettle", "Longtooth", "Marrow",
		"Nightshade", "Oatmeal", "Pothos", "Quiver", "Rosewater", "Static",
		"Tumbleweed", "Understudy",
	}
	demoRituals = []string{
		"Alphabetizing the dugout", "Chewing exactly one sunflower seed",
		"Counting backwards from nine", "Humming the seventh-inning stretch",
		"Polishing the rosin bag", "Whispering to the foul pole",
	}
)

// generateLeague rolls two nine-batter, three-pitcher teams from the demo
// pools using the sim's own RNG, so seeded runs reproduce the same league.
func generateLeague(s *sim.Sim) (away, home *sim.Team) {
	s.SetPools(demoFirstNames, demoLastNames, demoRituals)

	build := func(location, nickname string) *sim.Team {
		team := &sim.Team{
			ID:       sim.NewTeamID(),
			Location: location,
			Nickname: nickname,
		}
		for i := 0; i < 9; i++ {
			team.Lineup = append(team.Lineup, s.RollPlayer().ID)
		}
		for i := 0; i < 3; i++ {
			team.Rotation = append(team.Rotation, s.RollPlayer().ID)
		}
		if err := s.AddTeam(team); err != nil {
			logrus.Fatalf("unable to add demo team: %v", err)
		}
		return team
	}

	away = build("Duststorm", "Prospectors")
	home = build("Harbor", "Lampreys")
	return away, home
}

// loadLeague reads player and team fixtures from JSON files and commits
// them. The first two teams play as away and home respectively.
func loadLeague(s *sim.Sim, playersPath, teamsPath string) (away, home *sim.Team) {
	var players []*sim.Player
	readJSON(playersPath, &players)
	for _, p := range players {
		if err := s.AddPlayer(p); err != nil {
			logrus.Fatalf("unable to add player %s: %v", p.Name, err)
		}
	}

	var teams []*sim.Team
	readJSON(teamsPath, &teams)
	if len(teams) < 2 {
		logrus.Fatalf("need at least two teams, got %d", len(teams))
	}
	for _, t := range teams {
		if err := s.AddTeam(t); err != nil {
			logrus.Fatalf("unable to add team %s: %v", t.Name(), err)
		}
	}
	return teams[0], teams[1]
}

func readJSON(path string, v any) {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("unable to read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		logrus.Fatalf("unable to parse %s: %v", path, err)
	}
}
