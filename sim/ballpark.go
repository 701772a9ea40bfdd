package sim

// Ballpark is the read-only attribute bag consumed by the outcome formulas.
// Per-team park resolution is a future extension point; the engine
// currently passes DefaultBallpark everywhere.
type Ballpark struct {
	ID       ParkID
	TeamID   TeamID
	Name     string
	Nickname string

	Ominousness   float64
	Forwardness   float64
	Obtuseness    float64
	Grandiosity   float64
	Fortification float64
	Elongation    float64
	Inconvenience float64
	Viscosity     float64
	Hype          float64
	Mysticism     float64
	Luxuriousness float64
	Filthiness    float64

	Birds int // ambient bird count
}

// DefaultBallpark returns the documented neutral park: 0.5 for every
// formula-facing attribute, zero hype/luxuriousness/filthiness, no birds.
func DefaultBallpark() *Ballpark {
	return &Ballpark{
		Ominousness:   0.5,
		Forwardness:   0.5,
		Obtuseness:    0.5,
		Grandiosity:   0.5,
		Fortification: 0.5,
		Elongation:    0.5,
		Inconvenience: 0.5,
		Viscosity:     0.5,
		Mysticism:     0.5,
	}
}
