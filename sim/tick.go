package sim

import (
	"fmt"
	"strings"
)

const (
	ballsNeeded   = 4
	strikesNeeded = 3
	outsNeeded    = 3
	homeBase      = 4
)

// tick resolves exactly one play event and returns the human-readable
// update line. The caller has exclusive ownership of rng and w for the
// duration of the call.
func (g *Game) tick(rng *Rng, w *World, tun Tuning) string {
	if g.Finished() {
		return g.LastUpdate
	}
	if update, over := g.checkGameOver(w); over {
		return update
	}
	if g.Inning == (Inning{}) {
		g.Inning = Inning{Frame: Top, Number: 1}
		return "Play ball!"
	}
	if g.Frame == Mid || g.Frame == End {
		g.Advance()
		return fmt.Sprintf("%s of %d, %s batting.",
			g.Frame, g.Number,
			w.Team(g.Teams.Select(g.Batting()).ID).Name())
	}

	pitcherID := g.resolvePitcher(rng, w)
	batterID, announcement := g.resolveBatter(rng, w)
	if announcement != "" {
		// No pitch is thrown on the announcement tick.
		return announcement
	}
	pit := pitcher{w.Player(pitcherID)}
	bat := batter{w.Player(batterID)}
	park := DefaultBallpark()

	if update, stole := g.resolveSteal(rng, w, tun); stole {
		return update
	}

	strike := rollStrike(rng, w.Date, park, pit, bat)
	if !rollSwing(rng, w.Date, park, pit, bat, strike) {
		if strike {
			return g.handleStrike(bat, "looking")
		}
		return g.handleBall(bat, w)
	}
	if !rollContact(rng, w.Date, park, pit, bat, strike) {
		return g.handleStrike(bat, "swinging")
	}
	if rollFoul(rng, w.Date, park, bat) {
		return g.handleFoul()
	}
	fld := g.rollFielder(rng, w)
	if rollOut(rng, w.Date, park, pit, fld, bat) {
		// TODO: double play / fielder's choice
		kind := "ground out"
		if rollFlyout(rng, park, bat) {
			kind = "flyout"
		}
		update := fmt.Sprintf("%s hit a %s to %s.", bat.Name, kind, fld.Name)
		g.recordOut()
		g.endPlateAppearance()
		return update
	}
	if rollHomeRun(rng, w.Date, park, pit, bat) {
		return g.handleHomeRun(bat)
	}
	defender := g.rollFielder(rng, w)
	return g.handleBaseHit(bat, w, rollBaseHit(rng, w.Date, park, pit, defender, bat))
}

// nextInOrder resolves whoever is due up against an ordered roster and its
// cursor. A non-nil slot means the appearance is already resolved and
// short-circuits. Cursor positions past the end of the order wrap to the
// first entry; an empty order synthesizes a placeholder player, stores it
// and appends it to the order. The resolved position is persisted back to
// the cursor. The second return value is true when the player was newly
// resolved (callers announce on true).
func nextInOrder(rng *Rng, w *World, slot *PlayerID, order *[]PlayerID, cursor *int, placeholder string) (PlayerID, bool) {
	if !slot.IsNil() {
		return *slot, false
	}
	var id PlayerID
	if len(*order) > 0 {
		if *cursor < len(*order) {
			id = (*order)[*cursor]
		} else {
			id = (*order)[0]
		}
	} else {
		p := GenerateNamedPlayer(rng, placeholder)
		w.Players[p.ID] = p
		*order = append(*order, p.ID)
		id = p.ID
	}
	for i, pid := range *order {
		if pid == id {
			*cursor = i
			break
		}
	}
	*slot = id
	return id, true
}

// resolvePitcher picks the fielding side's pitcher. The resolved rotation
// slot is persisted on the team so consecutive games rotate starters.
func (g *Game) resolvePitcher(rng *Rng, w *World) PlayerID {
	side := g.Teams.Select(g.Fielding())
	team := w.Team(side.ID)
	id, _ := nextInOrder(rng, w, &side.Pitcher, &team.Rotation, &team.RotationSlot, "Pitching Machine")
	return id
}

// resolveBatter picks the batting side's current batter. A newly resolved
// batter returns a non-empty announcement string.
func (g *Game) resolveBatter(rng *Rng, w *World) (PlayerID, string) {
	side := g.Teams.Select(g.Batting())
	team := w.Team(side.ID)
	id, fresh := nextInOrder(rng, w, &g.AtBat, &team.Lineup, &side.LineupSlot, "Batting Machine")
	if !fresh {
		return id, ""
	}
	return id, fmt.Sprintf("%s batting for the %s.", w.Player(id).Name, team.Nickname)
}

// rollFielder selects a random fielder from the fielding side's lineup.
// An empty lineup here is an invariant violation, not an error.
func (g *Game) rollFielder(rng *Rng, w *World) fielder {
	team := w.Team(g.Teams.Select(g.Fielding()).ID)
	id, ok := Choose(rng, team.Lineup)
	if !ok {
		panic(fmt.Sprintf("team %s has an empty lineup", team.ID))
	}
	return fielder{w.Player(id)}
}

// resolveSteal gives each unblocked runner one steal attempt. A resolved
// attempt, successful or not, consumes the whole event.
func (g *Game) resolveSteal(rng *Rng, w *World, tun Tuning) (string, bool) {
	g.rollFielder(rng, w) // fielder draw happens whether or not anyone runs
	occupied := g.BasesOccupied()
	for i := range g.Baserunners {
		r := &g.Baserunners[i]
		if occupied[r.Base+1] {
			continue
		}
		runner := w.Player(r.Player)
		if rng.NextFloat() >= tun.StealAttempt {
			continue
		}
		target := baseName(r.Base+1, homeBase)
		if rng.NextFloat() < tun.StealSuccess {
			r.Base++
			return fmt.Sprintf("%s steals %s!", runner.Name, target), true
		}
		g.Baserunners = append(g.Baserunners[:i], g.Baserunners[i+1:]...)
		message := fmt.Sprintf("%s gets caught stealing %s.", runner.Name, target)
		g.recordOut()
		return message, true
	}
	return "", false
}

// recordOut registers one out. The third out of a half-inning zeroes the
// count and outs, strands every runner, advances the lineup cursor and
// moves the inning to its next phase.
func (g *Game) recordOut() {
	g.Outs++
	if g.Outs >= outsNeeded {
		g.Balls, g.Strikes, g.Outs = 0, 0, 0
		g.AtBat = PlayerID{}
		g.Teams.Select(g.Batting()).LineupSlot++
		g.Baserunners = nil
		g.Advance()
	}
}

// endPlateAppearance closes out the current batter: count reset, at-bat
// cleared, lineup cursor advanced past them.
func (g *Game) endPlateAppearance() {
	g.Balls, g.Strikes = 0, 0
	g.AtBat = PlayerID{}
	g.Teams.Select(g.Batting()).LineupSlot++
}

// handleFoul adds a strike but never the strikeout strike: a foul with two
// strikes leaves the count where it stands.
func (g *Game) handleFoul() string {
	g.Strikes = min(g.Strikes+1, strikesNeeded-1)
	return fmt.Sprintf("Foul Ball. %d-%d", g.Balls, g.Strikes)
}

func (g *Game) handleStrike(bat batter, kind string) string {
	g.Strikes++
	if g.Strikes >= strikesNeeded {
		update := fmt.Sprintf("%s strikes out %s.", bat.Name, kind)
		g.recordOut()
		g.endPlateAppearance()
		return update
	}
	return fmt.Sprintf("Strike, %s. %d-%d", kind, g.Balls, g.Strikes)
}

// handleBall updates the count; the fourth ball is a walk. Only runners
// with no open base behind them are forced to advance; bases are checked
// against the pre-walk occupancy.
func (g *Game) handleBall(bat batter, w *World) string {
	g.Balls++
	if g.Balls < ballsNeeded {
		return fmt.Sprintf("Ball. %d-%d", g.Balls, g.Strikes)
	}
	var update strings.Builder
	fmt.Fprintf(&update, "%s draws a walk.", bat.Name)
	occupied := g.BasesOccupied()
	runners := g.Baserunners
	g.Baserunners = nil
	for _, r := range runners {
		base := r.Base
		forced := true
		for b := 1; b < base; b++ {
			if !occupied[b] {
				forced = false
				break
			}
		}
		if forced {
			base++
		}
		if base >= homeBase {
			g.creditRuns(1)
			fmt.Fprintf(&update, " %s scores!", w.Player(r.Player).Name)
		} else {
			g.Baserunners = append(g.Baserunners, Baserunner{Player: r.Player, Base: base})
		}
	}
	g.Baserunners = append(g.Baserunners, Baserunner{Player: bat.ID, Base: 1})
	g.endPlateAppearance()
	return update.String()
}

// handleHomeRun clears the bases and scores every runner plus the batter.
func (g *Game) handleHomeRun(bat batter) string {
	runs := len(g.Baserunners) + 1
	g.Baserunners = nil
	g.creditRuns(runs)
	g.endPlateAppearance()
	if runs == 1 {
		return fmt.Sprintf("%s hits a solo home run!", bat.Name)
	}
	return fmt.Sprintf("%s hits a %d-run home run!", bat.Name, runs)
}

// handleBaseHit advances every runner by the hit's base count, scoring any
// that reach home, and places the batter on the hit base.
func (g *Game) handleBaseHit(bat batter, w *World, bases int) string {
	var update strings.Builder
	switch bases {
	case 1:
		fmt.Fprintf(&update, "%s hits a Single!", bat.Name)
	case 2:
		fmt.Fprintf(&update, "%s hits a Double!", bat.Name)
	case 3:
		fmt.Fprintf(&update, "%s hits a Triple!", bat.Name)
	case 4:
		fmt.Fprintf(&update, "%s hits a Quadruple!", bat.Name)
	default:
		fmt.Fprintf(&update, "%s hits a %d-base Hit!", bat.Name, bases)
	}
	runners := g.Baserunners
	g.Baserunners = nil
	for _, r := range runners {
		// TODO: extra base advancement
		base := r.Base + bases
		if base >= homeBase {
			g.creditRuns(1)
			fmt.Fprintf(&update, " %s scores!", w.Player(r.Player).Name)
		} else {
			g.Baserunners = append(g.Baserunners, Baserunner{Player: r.Player, Base: base})
		}
	}
	g.Baserunners = append(g.Baserunners, Baserunner{Player: bat.ID, Base: bases})
	g.endPlateAppearance()
	return update.String()
}

// creditRuns scores runs for the batting team and keeps the per-inning
// tally in step.
func (g *Game) creditRuns(n int) {
	side := g.Teams.Select(g.Batting())
	side.Runs += n
	for len(side.RunsByInning) < g.Number {
		side.RunsByInning = append(side.RunsByInning, 0)
	}
	side.RunsByInning[g.Number-1] += n
}

// checkGameOver decides the game in the Mid or End of inning 9 or later:
// the home team wins as soon as the away team trails after its at-bats,
// the away team wins only after the bottom half completes. Both rotation
// cursors advance, preparing the next start.
func (g *Game) checkGameOver(w *World) (string, bool) {
	if g.Number < 9 {
		return "", false
	}
	var winner TeamSelect
	switch {
	case (g.Frame == Mid || g.Frame == End) && g.Teams.Away.Runs < g.Teams.Home.Runs:
		winner = Home
	case g.Frame == End && g.Teams.Away.Runs > g.Teams.Home.Runs:
		winner = Away
	default:
		return "", false
	}
	g.Winner = g.Teams.Select(winner).ID
	w.Team(g.Teams.Away.ID).RotationSlot++
	w.Team(g.Teams.Home.ID).RotationSlot++
	return fmt.Sprintf("Game over. %s %d, %s %d",
		w.Team(g.Teams.Away.ID).Nickname, g.Teams.Away.Runs,
		w.Team(g.Teams.Home.ID).Nickname, g.Teams.Home.Runs), true
}

// baseName spells a base number out for play-by-play text, with home
// identifying the scoring base.
func baseName(base, home int) string {
	switch base {
	case home:
		return "home"
	case 1:
		return "first base"
	case 2:
		return "second base"
	case 3:
		return "third base"
	case 4:
		return "fourth base"
	}
	suffix := "th"
	switch base % 100 {
	case 11, 12, 13:
	default:
		switch base % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s base", base, suffix)
}
