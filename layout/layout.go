// Package layout implements the bidirectional bijection between logical
// qubit indices and physical qubit indices used by the router.
//
// A Layout owns two parallel int slices, logicalToPhys and physToLogical,
// kept in lockstep by Swap. Every physical index in [0,N) is always
// assigned a distinct logical index — physicals with no circuit-assigned
// logical qubit are padded with synthetic logical IDs at construction
// (spec §4.5's "spare hardware qubit" edge case), so SwapCandidateGenerator
// can always express a swap in logical terms.
//
// Complexity: PhysOf, LogicalOf and Swap are O(1) and allocation-free.
// Clone is O(N).
//
// Errors:
//
//	ErrOutOfRange - a logical or physical index is outside its declared bound.
package layout

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a logical or physical index outside [0,bound).
var ErrOutOfRange = errors.New("layout: index out of range")

// Layout is the bijection between logical and physical qubit indices.
//
// logicalToPhys[l] is the physical slot currently holding logical qubit l.
// physToLogical[p] is the logical qubit currently held by physical slot p.
// len(physToLogical) == N (number of hardware qubits); len(logicalToPhys)
// may be smaller than N only if callers never query padding logicals, but
// NewIdentity always sizes both to N so every physical has a home logical.
type Layout struct {
	logicalToPhys []int
	physToLogical []int
}

// NewIdentity builds the identity layout over n physical qubits: logical i
// maps to physical i for every i in [0,n). Logical indices [0,n) therefore
// include both the circuit's real logical qubits and any padding logicals
// introduced by the caller to cover spare hardware qubits.
func NewIdentity(n int) *Layout {
	l2p := make([]int, n)
	p2l := make([]int, n)
	for i := 0; i < n; i++ {
		l2p[i] = i
		p2l[i] = i
	}

	return &Layout{logicalToPhys: l2p, physToLogical: p2l}
}

// New builds a Layout from an explicit logical-to-physical assignment.
// logicalToPhys must be a permutation of [0,len(logicalToPhys)); ErrOutOfRange
// is returned if any entry falls outside that range, or if some physical
// slot is left without a logical (as happens when an entry is repeated).
func New(logicalToPhys []int) (*Layout, error) {
	n := len(logicalToPhys)
	p2l := make([]int, n)
	for i := range p2l {
		p2l[i] = -1
	}
	for l, p := range logicalToPhys {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("layout: New: logical %d -> physical %d: %w", l, p, ErrOutOfRange)
		}
		p2l[p] = l
	}
	for p, l := range p2l {
		if l == -1 {
			return nil, fmt.Errorf("layout: New: physical %d has no logical assigned: %w", p, ErrOutOfRange)
		}
	}

	return &Layout{logicalToPhys: append([]int(nil), logicalToPhys...), physToLogical: p2l}, nil
}

// NewPadded builds a Layout from a partial logical-to-physical assignment
// covering the circuit's M real logical qubits, padding any of the
// numPhysical physical slots left unassigned with fresh synthetic logical
// ids M, M+1, ... in ascending physical order (spec line 76's "spare
// hardware qubit" case, M < numPhysical). logicalToPhys must have length at
// most numPhysical and assign distinct physicals in [0,numPhysical);
// ErrOutOfRange is returned otherwise.
func NewPadded(logicalToPhys []int, numPhysical int) (*Layout, error) {
	m := len(logicalToPhys)
	if m > numPhysical {
		return nil, fmt.Errorf("layout: NewPadded: %d logical qubits exceed %d physical slots: %w", m, numPhysical, ErrOutOfRange)
	}

	p2l := make([]int, numPhysical)
	for i := range p2l {
		p2l[i] = -1
	}
	for l, p := range logicalToPhys {
		if p < 0 || p >= numPhysical {
			return nil, fmt.Errorf("layout: NewPadded: logical %d -> physical %d: %w", l, p, ErrOutOfRange)
		}
		if p2l[p] != -1 {
			return nil, fmt.Errorf("layout: NewPadded: physical %d assigned to both logical %d and %d: %w", p, p2l[p], l, ErrOutOfRange)
		}
		p2l[p] = l
	}

	l2p := make([]int, numPhysical)
	copy(l2p, logicalToPhys)
	for i := m; i < numPhysical; i++ {
		l2p[i] = -1
	}

	nextSynthetic := m
	for p, l := range p2l {
		if l != -1 {
			continue
		}
		p2l[p] = nextSynthetic
		l2p[nextSynthetic] = p
		nextSynthetic++
	}

	return &Layout{logicalToPhys: l2p, physToLogical: p2l}, nil
}

// NumPhysical returns N, the number of physical qubit slots.
func (l *Layout) NumPhysical() int { return len(l.physToLogical) }

// PhysOf returns the physical qubit currently holding logical qubit logical.
func (l *Layout) PhysOf(logical int) (int, error) {
	if logical < 0 || logical >= len(l.logicalToPhys) {
		return 0, fmt.Errorf("layout: PhysOf(%d): %w", logical, ErrOutOfRange)
	}

	return l.logicalToPhys[logical], nil
}

// LogicalOf returns the logical qubit currently held by physical slot phys.
func (l *Layout) LogicalOf(phys int) (int, error) {
	if phys < 0 || phys >= len(l.physToLogical) {
		return 0, fmt.Errorf("layout: LogicalOf(%d): %w", phys, ErrOutOfRange)
	}

	return l.physToLogical[phys], nil
}

// Swap exchanges the logical qubits occupying physical slots a and b,
// updating both tables in O(1) with no allocation.
func (l *Layout) Swap(a, b int) error {
	n := len(l.physToLogical)
	if a < 0 || a >= n || b < 0 || b >= n {
		return fmt.Errorf("layout: Swap(%d,%d): %w", a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}

	la, lb := l.physToLogical[a], l.physToLogical[b]
	l.physToLogical[a], l.physToLogical[b] = lb, la
	l.logicalToPhys[la], l.logicalToPhys[lb] = b, a

	return nil
}

// Clone returns a deep, independent copy for trial evaluation. O(N).
func (l *Layout) Clone() *Layout {
	return &Layout{
		logicalToPhys: append([]int(nil), l.logicalToPhys...),
		physToLogical: append([]int(nil), l.physToLogical...),
	}
}

// Validate checks the bijection invariant: phys_to_logic[logic_to_phys[l]]==l
// for every logical, and the reverse for every physical. Intended for tests
// and defensive checks in the router, not for hot-path use.
func (l *Layout) Validate() error {
	for lg, ph := range l.logicalToPhys {
		if ph < 0 || ph >= len(l.physToLogical) || l.physToLogical[ph] != lg {
			return fmt.Errorf("layout: Validate: logical %d -> physical %d does not round-trip", lg, ph)
		}
	}
	for ph, lg := range l.physToLogical {
		if lg < 0 || lg >= len(l.logicalToPhys) || l.logicalToPhys[lg] != ph {
			return fmt.Errorf("layout: Validate: physical %d -> logical %d does not round-trip", ph, lg)
		}
	}

	return nil
}
