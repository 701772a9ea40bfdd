package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/sandlot-sim/sandlot-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed0       uint64 // First 64-bit RNG seed word
	seed1       uint64 // Second 64-bit RNG seed word
	logLevel    string // Log verbosity level
	playersFile string // Optional JSON file with an array of players
	teamsFile   string // Optional JSON file with an array of teams
	tuningFile  string // Optional YAML file overriding tuning constants
	season      int    // Season number for the simulated day
	day         int    // Day number for the simulated day
	maxTicks    int    // Safety cap on ticks per game
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sandlot-sim",
	Short: "Deterministic turn-based baseball simulator",
}

// runCmd simulates one full game and prints a scoreboard line per tick
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single game to completion",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Seed words (0, 0) degenerate xorshift128+ into a stuck all-zero
		// state, so that pair doubles as "seed from OS entropy".
		var s *sim.Sim
		if seed0 == 0 && seed1 == 0 {
			s = sim.New()
		} else {
			s = sim.NewSeeded(seed0, seed1)
		}

		if tuningFile != "" {
			tuning, err := LoadTuning(tuningFile)
			if err != nil {
				logrus.Fatalf("unable to read tuning config: %v", err)
			}
			s.SetTuning(tuning)
		}

		var away, home *sim.Team
		if playersFile != "" || teamsFile != "" {
			away, home = loadLeague(s, playersFile, teamsFile)
		} else {
			away, home = generateLeague(s)
		}

		game := sim.NewGame(sim.AwayHome[sim.TeamID]{Away: away.ID, Home: home.ID})
		if _, _, err := s.StartDay(sim.Date{Season: season, Day: day}, []*sim.Game{game}); err != nil {
			logrus.Fatalf("unable to start day: %v", err)
		}

		logrus.Infof("Starting game: %s at %s (season %d, day %d)", away.Name(), home.Name(), season, day)
		for tick := 0; tick < maxTicks; tick++ {
			s.Tick()
			g := s.GamesToday()[0]
			fmt.Println(scoreboard(g, away.Nickname, home.Nickname))
			if g.Finished() {
				return
			}
		}
		logrus.Fatalf("game did not finish within %d ticks", maxTicks)
	},
}

// scoreboard renders one line of game state: score, inning arrow, base
// diamonds, count pips and the latest update.
func scoreboard(g *sim.Game, awayName, homeName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d %s %d  ", awayName, g.Teams.Away.Runs, homeName, g.Teams.Home.Runs)

	if g.Batting() == sim.Away {
		fmt.Fprintf(&sb, "▲ %d  ", g.Number)
	} else {
		fmt.Fprintf(&sb, "▼ %d  ", g.Number)
	}

	occupied := g.BasesOccupied()
	maxBase := 3
	for base := range occupied {
		if base > maxBase {
			maxBase = base
		}
	}
	for base := maxBase; base >= 1; base-- {
		if occupied[base] {
			sb.WriteString("◆")
		} else {
			sb.WriteString("◇")
		}
	}

	for _, pips := range []struct{ have, slots int }{
		{g.Balls, max(3, g.Balls)},
		{g.Strikes, max(2, g.Strikes)},
		{g.Outs, max(2, g.Outs)},
	} {
		sb.WriteString("  ")
		for i := 0; i < pips.slots; i++ {
			if pips.have > i {
				sb.WriteString("●")
			} else {
				sb.WriteString("○")
			}
		}
	}

	fmt.Fprintf(&sb, "  %s", g.LastUpdate)
	return sb.String()
}

func init() {
	runCmd.Flags().Uint64Var(&seed0, "seed0", 0, "first RNG seed word (0,0 seeds from OS entropy)")
	runCmd.Flags().Uint64Var(&seed1, "seed1", 0, "second RNG seed word")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	runCmd.Flags().StringVar(&playersFile, "players", "", "JSON file with an array of players")
	runCmd.Flags().StringVar(&teamsFile, "teams", "", "JSON file with an array of teams (first is away, second is home)")
	runCmd.Flags().StringVar(&tuningFile, "tuning", "", "YAML file overriding tuning constants")
	runCmd.Flags().IntVar(&season, "season", 1, "season number")
	runCmd.Flags().IntVar(&day, "day", 1, "day number")
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 100000, "safety cap on ticks per game")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
