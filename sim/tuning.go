package sim

// Tuning holds probability constants that are placeholders pending external
// calibration. They are configuration, not hard-won truths; callers may
// override them per run.
type Tuning struct {
	// StealAttempt is the per-runner, per-tick chance of attempting a steal
	// when the next base is open.
	StealAttempt float64 `json:"steal_attempt" yaml:"steal_attempt"`
	// StealSuccess is the chance an attempted steal succeeds.
	StealSuccess float64 `json:"steal_success" yaml:"steal_success"`
}

// DefaultTuning returns the compiled-in placeholder constants.
func DefaultTuning() Tuning {
	return Tuning{
		StealAttempt: 0.02,
		StealSuccess: 0.5,
	}
}
