package router

// Option configures a Router's tunable constants, mirroring
// dijkstra.Option / builder.BuilderOption's functional-options shape.
type Option func(*Router)

// WithDecayRate overrides DECAY_RATE (spec default 0.001).
func WithDecayRate(rate float64) Option {
	return func(r *Router) { r.decayRate = rate }
}

// WithDecayResetInterval overrides DECAY_RESET_INTERVAL (spec default 5).
func WithDecayResetInterval(interval int) Option {
	return func(r *Router) { r.decayResetInterval = interval }
}

// WithExtendedSetSize overrides EXTENDED_SET_SIZE (spec default 20).
func WithExtendedSetSize(size int) Option {
	return func(r *Router) { r.extendedSetSize = size }
}

// WithMaxIterationsWithoutProgress overrides the non-progress bound used to
// detect a disconnected coupling graph (SPEC_FULL.md §D.3 adapts the Rust
// source's 10*N default; 0 or negative falls back to that default at
// construction time).
func WithMaxIterationsWithoutProgress(n int) Option {
	return func(r *Router) { r.maxIterationsWithoutProgress = n }
}
