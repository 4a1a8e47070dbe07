// Package swapgen enumerates SWAP candidates affecting the front layer's
// qubits, over the coupling graph's edges (spec §4.5).
package swapgen

import (
	"fmt"

	"github.com/katalvlaran/qroute/circuit"
	"github.com/katalvlaran/qroute/frontlayer"
	"github.com/katalvlaran/qroute/layout"
	"github.com/katalvlaran/qroute/topology"
)

// Swap is a normalized unordered pair of logical qubit indices, A < B.
type Swap struct {
	A, B int
}

// Generate returns every candidate SWAP affecting a qubit in front, deduped.
// For each front-layer node's logical qargs v, and each physical neighbor n
// of phys_of(v), it emits the normalized pair (min(v, logical_of(n)),
// max(v, logical_of(n))).
func Generate(dag *circuit.DAG, front *frontlayer.FrontLayer, l *layout.Layout, cv *topology.CouplingView) ([]Swap, error) {
	seen := make(map[Swap]bool)
	var out []Swap

	for _, nodeID := range front.IDs() {
		qargs, err := dag.Qargs(nodeID)
		if err != nil {
			return nil, fmt.Errorf("swapgen: Generate: %w", err)
		}
		for _, v := range qargs {
			p, err := l.PhysOf(v)
			if err != nil {
				return nil, fmt.Errorf("swapgen: Generate: %w", err)
			}
			neighbors, err := cv.Neighbors(p)
			if err != nil {
				return nil, fmt.Errorf("swapgen: Generate: %w", err)
			}
			for _, n := range neighbors {
				vp, err := l.LogicalOf(n)
				if err != nil {
					return nil, fmt.Errorf("swapgen: Generate: %w", err)
				}
				sw := normalize(v, vp)
				if seen[sw] {
					continue
				}
				seen[sw] = true
				out = append(out, sw)
			}
		}
	}

	return out, nil
}

func normalize(a, b int) Swap {
	if a < b {
		return Swap{A: a, B: b}
	}

	return Swap{A: b, B: a}
}
