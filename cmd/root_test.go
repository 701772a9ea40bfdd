package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/sandlot-sim/sandlot-sim/sim"
)

func TestScoreboard(t *testing.T) {
	g := sim.NewGame(sim.AwayHome[sim.TeamID]{Away: sim.NewTeamID(), Home: sim.NewTeamID()})
	g.Inning = sim.Inning{Frame: sim.Top, Number: 3}
	g.Teams.Away.Runs = 2
	g.Teams.Home.Runs = 1
	g.Balls, g.Strikes, g.Outs = 1, 2, 1
	g.Baserunners = []sim.Baserunner{{Player: sim.NewPlayerID(), Base: 2}}
	g.LastUpdate = "Foul Ball. 1-2"

	line := scoreboard(g, "Prospectors", "Lampreys")

	assert.Contains(t, line, "Prospectors 2 Lampreys 1")
	assert.Contains(t, line, "▲ 3")
	// Bases render third-to-first: only second is occupied.
	assert.Contains(t, line, "◇◆◇")
	assert.Contains(t, line, "●○○")  // one ball
	assert.Contains(t, line, "●●")   // two strikes
	assert.Contains(t, line, "●○")   // one out
	assert.Contains(t, line, "Foul Ball. 1-2")
}

func TestScoreboard_HomeBattingArrow(t *testing.T) {
	g := sim.NewGame(sim.AwayHome[sim.TeamID]{Away: sim.NewTeamID(), Home: sim.NewTeamID()})
	g.Inning = sim.Inning{Frame: sim.Bottom, Number: 9}

	assert.Contains(t, scoreboard(g, "A", "H"), "▼ 9")
}
