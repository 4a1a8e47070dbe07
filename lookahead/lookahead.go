// Package lookahead builds the ExtendedSet: a bounded, round-robin lookahead
// past the front layer, used by the decay and lookahead heuristics to bias
// SWAP scoring toward gates that will become executable soon (spec §4.6).
package lookahead

import (
	"github.com/katalvlaran/qroute/circuit"
	"github.com/katalvlaran/qroute/frontlayer"
)

// DefaultCapacity is EXTENDED_SET_SIZE from spec §3/§4.6.
const DefaultCapacity = 20

// Build returns up to capacity distinct two-qubit operation node IDs drawn
// from the BFS successors of every node in front, round-robining across one
// cursor per front-layer node until every cursor is exhausted or capacity is
// reached. Order within the result is irrelevant to the caller — the
// extended set contributes only through an averaged distance sum.
func Build(dag *circuit.DAG, front *frontlayer.FrontLayer, capacity int) []circuit.NodeID {
	ids := front.IDs()
	if len(ids) == 0 || capacity <= 0 {
		return nil
	}

	cursors := make([]*circuit.SuccessorCursor, len(ids))
	alive := make([]bool, len(ids))
	for i, id := range ids {
		cursors[i] = dag.BFSSuccessors(id)
		alive[i] = true
	}

	seen := make(map[circuit.NodeID]bool, capacity)
	var out []circuit.NodeID

	remaining := len(cursors)
	for remaining > 0 && len(out) < capacity {
		for i := range cursors {
			if !alive[i] {
				continue
			}
			layer, ok := cursors[i].Next()
			if !ok {
				alive[i] = false
				remaining--

				continue
			}
			for _, id := range layer {
				if len(out) >= capacity {
					break
				}
				if seen[id] {
					continue
				}
				seen[id] = true
				out = append(out, id)
			}
			if len(out) >= capacity {
				break
			}
		}
	}

	return out
}
