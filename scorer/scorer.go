// Package scorer computes the three SABRE heuristic variants over a trial
// layout: basic (H1), lookahead (H2), and decay-penalized (H3) — spec §4.7.
//
// All sums accumulate left to right over their input slice in order, per
// the spec's determinism contract: two implementations fed identical inputs
// in identical order must produce bit-identical sums.
package scorer

import (
	"fmt"

	"github.com/katalvlaran/qroute/circuit"
	"github.com/katalvlaran/qroute/layout"
	"github.com/katalvlaran/qroute/topology"
)

// Heuristic selects which scoring variant Score computes.
type Heuristic int

const (
	// Basic is H1: the raw front-layer distance sum.
	Basic Heuristic = iota + 1
	// Lookahead is H2: H1 blended with an averaged extended-set term.
	Lookahead
	// Decay is H3: H2 penalized by the swapped qubits' decay multipliers.
	Decay
)

// LookaheadWeight is W in spec §4.7's H2 formula.
const LookaheadWeight = 0.5

// SumDistance computes Σ cdist[phys_of(q0(g)), phys_of(q1(g))] over nodes,
// under the given trial layout — H1 when nodes is the front layer.
func SumDistance(cv *topology.CouplingView, l *layout.Layout, dag *circuit.DAG, nodes []circuit.NodeID) (float64, error) {
	var sum float64
	for _, id := range nodes {
		qargs, err := dag.Qargs(id)
		if err != nil {
			return 0, fmt.Errorf("scorer: SumDistance: %w", err)
		}
		if len(qargs) != 2 {
			return 0, fmt.Errorf("scorer: SumDistance: node %d is not two-qubit", id)
		}
		p0, err := l.PhysOf(qargs[0])
		if err != nil {
			return 0, fmt.Errorf("scorer: SumDistance: %w", err)
		}
		p1, err := l.PhysOf(qargs[1])
		if err != nil {
			return 0, fmt.Errorf("scorer: SumDistance: %w", err)
		}
		d, err := cv.Distance(p0, p1)
		if err != nil {
			return 0, fmt.Errorf("scorer: SumDistance: %w", err)
		}
		sum += d
	}

	return sum, nil
}

// Score evaluates the trial layout l under the chosen heuristic.
//
//   - Basic: H1(front).
//   - Lookahead: H1(front)/|front| + W*H1(extended)/|extended| (0 if extended is empty).
//   - Decay: the Lookahead score scaled by max(decay[a], decay[b]), where
//     (a,b) is the candidate SWAP's logical index pair.
func Score(
	heuristic Heuristic,
	cv *topology.CouplingView,
	l *layout.Layout,
	dag *circuit.DAG,
	front []circuit.NodeID,
	extended []circuit.NodeID,
	decay []float64,
	a, b int,
) (float64, error) {
	h1, err := SumDistance(cv, l, dag, front)
	if err != nil {
		return 0, err
	}
	if heuristic == Basic {
		return h1, nil
	}

	h2 := h1 / float64(len(front))
	if len(extended) > 0 {
		hExt, err := SumDistance(cv, l, dag, extended)
		if err != nil {
			return 0, err
		}
		h2 += LookaheadWeight * hExt / float64(len(extended))
	}
	if heuristic == Lookahead {
		return h2, nil
	}

	penalty := decay[a]
	if decay[b] > penalty {
		penalty = decay[b]
	}

	return penalty * h2, nil
}
