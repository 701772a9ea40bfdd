//go:build !simdebug

package sim

const debugChecks = false
