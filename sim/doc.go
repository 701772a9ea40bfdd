// Package sim provides the core deterministic engine for a turn-based
// baseball simulation.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - rng.go: the seedable xorshift128+ generator whose exact draw sequence
//     is part of the reproducible contract
//   - world.go: the in-memory entity store (players, teams, today's games)
//     and its consistency invariants
//   - outcome.go: the probability formulas that turn player and park
//     attributes into play outcomes
//   - tick.go: the per-game state machine that resolves one play event per
//     invocation
//
// # Determinism
//
// Every stochastic decision draws from one shared Rng, and the number and
// order of draws per event is fixed. Two simulations built from the same
// seed words and the same entities produce bit-for-bit identical play-by-play
// output. Serializing and restoring a Sim (see Sim.MarshalJSON) is a no-op
// on the draw sequence.
//
// # Failure model
//
// Caller-supplied entities are validated before they are committed and
// rejected with structured errors (see errors.go). Anything that should be
// impossible once those validations hold, like a dangling identifier lookup
// mid-game or an empty fielding lineup, is a defect and panics.
//
// Thread-safety: NOT thread-safe. A Sim assumes one exclusive mutator.
package sim
