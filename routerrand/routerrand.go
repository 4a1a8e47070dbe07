// Package routerrand provides the router's sole source of randomness: a
// single "choose an index uniformly at random" primitive, injected by the
// caller so that a fixed seed reproduces byte-identical output across runs
// (spec §5).
//
// Mirrors builder's *rand.Rand injection (WithRand/WithSeed) — stdlib
// math/rand, not the v2 package, to match the teacher exactly.
package routerrand

import "math/rand"

// Chooser exposes the single randomness primitive the router is permitted
// to use for tie-breaking. Implementations must be deterministic given a
// fixed internal state, so that identical inputs and seed reproduce
// identical output sequences.
type Chooser interface {
	// Choose returns a uniformly random index in [0,n). n must be positive.
	Choose(n int) int
}

// randChooser is the *rand.Rand-backed Chooser.
type randChooser struct {
	rng *rand.Rand
}

// New wraps an existing *rand.Rand as a Chooser.
func New(rng *rand.Rand) Chooser {
	return &randChooser{rng: rng}
}

// NewSeeded returns a Chooser backed by a freshly seeded *rand.Rand.
func NewSeeded(seed int64) Chooser {
	return &randChooser{rng: rand.New(rand.NewSource(seed))}
}

// Choose returns rng.Intn(n).
func (c *randChooser) Choose(n int) int {
	return c.rng.Intn(n)
}
