package testkit

import "testing"

// Swap points target at replacement until the test ends.
// Tests that swap package state must not run in parallel with its readers
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
