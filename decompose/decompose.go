package decompose

import "fmt"

// DefaultTolerance is the near-zero-angle threshold BuildZYZNet uses when
// called through a Decomposer.
const DefaultTolerance = 1e-9

// DefaultCacheSize bounds the number of distinct approximants a Decomposer
// remembers, matching the peripheral, best-effort nature of this module.
const DefaultCacheSize = 256

// Decomposer approximates SU(2) targets as basis-gate nets, caching results
// keyed by a fixed-precision rounding of the target's (A, B) parameters —
// the Go equivalent of lru_dict.rs hashing its Python key argument.
type Decomposer struct {
	cache     *Cache
	tolerance float64
}

// NewDecomposer returns a Decomposer with the given cache capacity and
// near-zero-angle tolerance. capacity <= 0 falls back to DefaultCacheSize;
// tolerance <= 0 falls back to DefaultTolerance.
func NewDecomposer(capacity int, tolerance float64) (*Decomposer, error) {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	cache, err := NewCache(capacity)
	if err != nil {
		return nil, fmt.Errorf("decompose: NewDecomposer: %w", err)
	}

	return &Decomposer{cache: cache, tolerance: tolerance}, nil
}

// Approximate returns the ZYZ basis-gate net for target, serving a cached
// result when target has already been decomposed (up to the cache key's
// rounding precision).
func (d *Decomposer) Approximate(target SU2) GateNet {
	key := roundKey(target)
	if net, ok := d.cache.Get(key); ok {
		return net
	}

	angles := DecomposeZYZ(target)
	net := BuildZYZNet(angles, d.tolerance)
	d.cache.Put(key, net)

	return net
}

// roundKey quantizes target's parameters to 1e-9 precision so that
// numerically-adjacent SU2 values (repeated decompositions of a target are
// rarely bit-exact) share a cache entry.
func roundKey(m SU2) string {
	return fmt.Sprintf("%.9f|%.9f|%.9f|%.9f", real(m.A), imag(m.A), real(m.B), imag(m.B))
}
