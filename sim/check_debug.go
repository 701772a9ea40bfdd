//go:build simdebug

package sim

// debugChecks re-validates the world after every mutating simulation step.
const debugChecks = true
