package sim

// Date identifies a simulated calendar day. Day drives the per-player vibe
// cycle (see Player.Vibes).
type Date struct {
	Season int `json:"season"`
	Day    int `json:"day"`
}
