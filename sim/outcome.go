package sim

import "math"

// Role wrappers keep the three-player formulas from silently swapping
// arguments.
type (
	batter  struct{ *Player }
	pitcher struct{ *Player }
	fielder struct{ *Player }
)

// Each roll below draws exactly one fresh uniform and compares it against a
// computed threshold. A threshold that evaluates to NaN (a negative base
// raised to a fractional power) compares as "draw is not less than
// threshold", suppressing the outcome. The comparison direction is part of
// the reproducible contract.

func vibesMod(p *Player, date Date) float64 {
	return 1.0 + 0.2*p.Vibes(date)
}

// rollStrike decides whether the pitch is in the zone.
// NOTE: mostly using the season 14 formula.
func rollStrike(rng *Rng, date Date, park *Ballpark, pit pitcher, bat batter) bool {
	threshold := math.Min(
		0.2+
			0.285*(pit.Ruthlessness*vibesMod(pit.Player, date))+
			0.2*park.Forwardness+
			0.1*bat.Musclitude,
		0.86)
	return rng.NextFloat() < threshold
}

// rollSwing decides whether the batter offers, with separate formulas for
// pitches in and out of the zone.
func rollSwing(rng *Rng, date Date, park *Ballpark, pit pitcher, bat batter, strike bool) bool {
	batterVibes := vibesMod(bat.Player, date)
	pitcherVibes := vibesMod(pit.Player, date)

	var threshold float64
	if strike {
		div := bat.Divinity * batterVibes
		musc := bat.Musclitude * batterVibes
		thwack := bat.Thwackability * batterVibes
		invpath := (1.0 - bat.Patheticism) * batterVibes
		ruth := pit.Ruthlessness * pitcherVibes
		combined := (div + musc + invpath + thwack) / 4.0
		threshold = 0.6 + 0.35*combined - 0.2*ruth + 0.2*(park.Viscosity-0.5)
	} else {
		moxie := bat.Moxie * batterVibes
		path := bat.Patheticism
		ruth := pit.Ruthlessness * pitcherVibes
		combined := (12.0*ruth - 5.0*moxie + 5.0*path + 4.0*park.Viscosity) / 20.0
		if combined < 0.0 {
			threshold = math.NaN()
		} else {
			threshold = clamp(math.Pow(combined, 1.5), 0.1, 0.95)
		}
	}
	return rng.NextFloat() < threshold
}

// rollContact decides whether a swing connects.
// NOTE: mostly using the season 14 formula.
func rollContact(rng *Rng, date Date, park *Ballpark, pit pitcher, bat batter, strike bool) bool {
	fort := park.Fortification - 0.5
	visc := park.Viscosity - 0.5
	fwd := park.Forwardness - 0.5
	parkSum := (fort + 3.0*visc - 6.0*fwd) / 10.0

	batterVibes := vibesMod(bat.Player, date)
	pitcherVibes := vibesMod(pit.Player, date)

	var threshold float64
	if strike {
		combined := (bat.Divinity + bat.Musclitude + bat.Thwackability - bat.Patheticism) / 2.0 * batterVibes
		if combined < 0.0 {
			threshold = math.NaN()
		} else {
			ruth := pit.Ruthlessness * pitcherVibes
			threshold = math.Min(0.78-0.08*ruth+0.16*parkSum+0.17*math.Pow(combined, 1.2), 0.9)
		}
	} else {
		path := math.Max((1.0-bat.Patheticism)*batterVibes, 0.0)
		ruth := pit.Ruthlessness * pitcherVibes
		threshold = math.Min(0.4-0.1*ruth+0.35*math.Pow(path, 1.5)+0.14*parkSum, 1.0)
	}
	return rng.NextFloat() < threshold
}

// rollFoul decides whether contact goes foul.
func rollFoul(rng *Rng, date Date, park *Ballpark, bat batter) bool {
	batterSum := (bat.Musclitude + bat.Thwackability + bat.Divinity) * vibesMod(bat.Player, date) / 3.0
	threshold := 0.25 + 0.1*park.Forwardness - 0.1*park.Obtuseness + 0.1*batterSum
	return rng.NextFloat() < threshold
}

// rollOut decides whether a ball in play is converted into an out.
// Rough formula for season 14 from
// https://github.com/xSke/resim/blob/main/notebooks/find_roll_formula_out.ipynb
func rollOut(rng *Rng, date Date, park *Ballpark, pit pitcher, fld fielder, bat batter) bool {
	thwack := bat.Thwackability * vibesMod(bat.Player, date)
	unthwack := pit.Unthwackability * vibesMod(pit.Player, date)
	omni := fld.Omniscience * vibesMod(fld.Player, date)
	grand := park.Grandiosity - 0.5
	obt := park.Obtuseness - 0.5
	omin := park.Ominousness - 0.5
	incon := park.Inconvenience - 0.5
	visc := park.Viscosity - 0.5
	fwd := park.Forwardness - 0.5

	threshold := 0.3115 + 0.1*thwack - 0.08*unthwack - 0.065*omni +
		0.01*grand +
		0.0085*obt -
		0.0033*omin -
		0.0015*incon -
		0.0033*visc +
		0.01*fwd
	return rng.NextFloat() < threshold
}

// rollFlyout classifies an out as a flyout rather than a ground out.
// https://github.com/xSke/resim/blob/main/notebooks/find_roll_formula_fly.ipynb
func rollFlyout(rng *Rng, park *Ballpark, bat batter) bool {
	omin := park.Ominousness - 0.5
	threshold := 0.18 + 0.3*bat.Buoyancy - 0.16*bat.Suppression - 0.1*omin
	return rng.NextFloat() < threshold
}

// rollHomeRun decides whether a ball that stayed fair and avoided the
// defense leaves the park.
// https://github.com/xSke/resim/blob/main/notebooks/find_roll_formula_hr.ipynb
func rollHomeRun(rng *Rng, date Date, park *Ballpark, pit pitcher, bat batter) bool {
	pitcherVibes := vibesMod(pit.Player, date)
	div := bat.Divinity * vibesMod(bat.Player, date)
	opw := pit.Overpowerment * pitcherVibes
	supp := pit.Suppression * pitcherVibes
	opwSupp := (10.0*opw + supp) / 11.0

	grand := park.Grandiosity - 0.5
	fort := park.Fortification - 0.5
	visc := park.Viscosity - 0.5
	omin := park.Ominousness - 0.5
	fwd := park.Forwardness - 0.5
	parkSum := 0.4*grand + 0.2*fort + 0.08*visc + 0.08*omin - 0.24*fwd

	threshold := 0.12 + 0.16*div - 0.08*opwSupp - 0.18*parkSum
	return rng.NextFloat() < threshold
}

// rollBaseHit classifies a hit as a single, double or triple. The triple
// roll is checked before the double roll; that ordering is a contract (the
// priority rationale is undocumented upstream) and both draws are consumed
// either way.
//
// Season 14 coefficients:
// https://github.com/xSke/resim/blob/main/notebooks/find_roll_formula_triples_kidror.ipynb
// https://github.com/xSke/resim/blob/main/notebooks/find_roll_formula_doubles.ipynb
func rollBaseHit(rng *Rng, date Date, park *Ballpark, pit pitcher, fld fielder, bat batter) int {
	batterVibes := vibesMod(bat.Player, date)
	gf := bat.GroundFriction * batterVibes
	musc := bat.Musclitude * batterVibes
	opw := pit.Overpowerment * vibesMod(pit.Player, date)
	chase := fld.Chasiness * vibesMod(fld.Player, date)
	fwd := park.Forwardness - 0.5
	grand := park.Grandiosity - 0.5
	obt := park.Obtuseness - 0.5
	visc := park.Viscosity - 0.5
	omin := park.Ominousness - 0.5
	elong := park.Elongation - 0.5

	tripleThreshold := 0.05 + 0.2*gf - 0.04*opw - 0.06*chase +
		0.02*fwd +
		0.035*grand +
		0.035*obt -
		0.005*omin -
		0.005*visc
	doubleThreshold := 0.165 + 0.2*musc - 0.04*opw - 0.009*chase + 0.027*fwd -
		0.015*elong -
		0.01*omin -
		0.008*visc

	tripleRoll := rng.NextFloat()
	doubleRoll := rng.NextFloat()

	switch {
	case tripleRoll < tripleThreshold:
		return 3
	case doubleRoll < doubleThreshold:
		return 2
	default:
		return 1
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
