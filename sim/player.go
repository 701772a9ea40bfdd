package sim

import (
	"encoding/json"
	"math"
	"strings"
)

// Player is a statistically-defined participant. The continuous attributes
// are in [0, 1] and feed the outcome formulas; the discrete attributes are
// rolled once at generation and otherwise inert to the simulation.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`

	Thwackability    float64 `json:"thwackability"`
	Moxie            float64 `json:"moxie"`
	Divinity         float64 `json:"divinity"`
	Musclitude       float64 `json:"musclitude"`
	Patheticism      float64 `json:"patheticism"`
	Buoyancy         float64 `json:"buoyancy"`
	BaseThirst       float64 `json:"base_thirst"`
	Laserlikeness    float64 `json:"laserlikeness"`
	GroundFriction   float64 `json:"ground_friction"`
	Continuation     float64 `json:"continuation"`
	Indulgence       float64 `json:"indulgence"`
	Martyrdom        float64 `json:"martyrdom"`
	Tragicness       float64 `json:"tragicness"`
	Shakespearianism float64 `json:"shakespearianism"`
	Suppression      float64 `json:"suppression"`
	Unthwackability  float64 `json:"unthwackability"`
	Coldness         float64 `json:"coldness"`
	Overpowerment    float64 `json:"overpowerment"`
	Ruthlessness     float64 `json:"ruthlessness"`
	Omniscience      float64 `json:"omniscience"`
	Tenaciousness    float64 `json:"tenaciousness"`
	Watchfulness     float64 `json:"watchfulness"`
	Anticapitalism   float64 `json:"anticapitalism"`
	Chasiness        float64 `json:"chasiness"`
	Pressurization   float64 `json:"pressurization"`
	Cinnamon         float64 `json:"cinnamon"`

	Soul          int    `json:"soul"`
	PeanutAllergy bool   `json:"peanut_allergy"`
	Fate          int    `json:"fate"`
	Blood         int    `json:"blood"`
	Coffee        int    `json:"coffee"`
	Ritual        string `json:"ritual"`
}

// UnmarshalJSON accepts legacy camelCase key names for a few fields as
// simple aliases of the snake_case names.
func (p *Player) UnmarshalJSON(data []byte) error {
	type player Player
	aux := struct {
		*player
		BaseThirst     *float64 `json:"baseThirst"`
		GroundFriction *float64 `json:"groundFriction"`
		PeanutAllergy  *bool    `json:"peanutAllergy"`
	}{player: (*player)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.BaseThirst != nil {
		p.BaseThirst = *aux.BaseThirst
	}
	if aux.GroundFriction != nil {
		p.GroundFriction = *aux.GroundFriction
	}
	if aux.PeanutAllergy != nil {
		p.PeanutAllergy = *aux.PeanutAllergy
	}
	return nil
}

// GeneratePlayer rolls a new player, drawing the name from the first/last
// name pools and the ritual from the ritual pool. The draw order (name,
// then the 26 continuous attributes, then the discrete attributes, then the
// ritual) is part of the reproducible contract.
func GeneratePlayer(rng *Rng, firstNames, lastNames, rituals []string) *Player {
	first, _ := Choose(rng, firstNames)
	last, _ := Choose(rng, lastNames)
	return generatePlayer(rng, strings.TrimSpace(first+" "+last), rituals)
}

// GenerateNamedPlayer rolls a new player with a fixed name and no ritual
// pool. Used for synthesized placeholder players; consumes the same number
// of draws as GeneratePlayer minus the two name draws.
func GenerateNamedPlayer(rng *Rng, name string) *Player {
	return generatePlayer(rng, name, nil)
}

func generatePlayer(rng *Rng, name string, rituals []string) *Player {
	p := &Player{
		ID:               NewPlayerID(),
		Name:             name,
		Thwackability:    rng.NextFloat(),
		Moxie:            rng.NextFloat(),
		Divinity:         rng.NextFloat(),
		Musclitude:       rng.NextFloat(),
		Patheticism:      rng.NextFloat(),
		Buoyancy:         rng.NextFloat(),
		BaseThirst:       rng.NextFloat(),
		Laserlikeness:    rng.NextFloat(),
		GroundFriction:   rng.NextFloat(),
		Continuation:     rng.NextFloat(),
		Indulgence:       rng.NextFloat(),
		Martyrdom:        rng.NextFloat(),
		Tragicness:       rng.NextFloat(),
		Shakespearianism: rng.NextFloat(),
		Suppression:      rng.NextFloat(),
		Unthwackability:  rng.NextFloat(),
		Coldness:         rng.NextFloat(),
		Overpowerment:    rng.NextFloat(),
		Ruthlessness:     rng.NextFloat(),
		Omniscience:      rng.NextFloat(),
		Tenaciousness:    rng.NextFloat(),
		Watchfulness:     rng.NextFloat(),
		Anticapitalism:   rng.NextFloat(),
		Chasiness:        rng.NextFloat(),
		Pressurization:   rng.NextFloat(),
		Cinnamon:         rng.NextFloat(),
	}
	p.Soul = chooseRange(rng, 2, 10)
	p.PeanutAllergy, _ = Choose(rng, []bool{true, false})
	p.Fate = chooseRange(rng, 0, 100)
	// The ritual is rolled right after fate. An empty pool still consumes
	// the draw, keeping the sequence aligned with pooled generation.
	p.Ritual, _ = Choose(rng, rituals)
	p.Blood = chooseRange(rng, 0, 13)
	p.Coffee = chooseRange(rng, 0, 13)
	return p
}

// Vibes returns the player's sinusoidal daily modifier in [-1, 1]. Several
// attributes are scaled by (1 + 0.2*vibes) before entering the outcome
// formulas.
func (p *Player) Vibes(date Date) float64 {
	frequency := 6.0 + math.Round(10.0*p.Buoyancy)
	return math.Sin(math.Pi * ((2.0/frequency)*float64(date.Day) + 0.5))
}

func (p *Player) problems(_ *World) []error {
	var problems []error
	if p.ID.IsNil() {
		problems = append(problems, ErrNilID)
	}
	return problems
}
