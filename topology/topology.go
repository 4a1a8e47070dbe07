// Package topology provides a read-only view over the hardware coupling
// graph: adjacency queries and a precomputed all-pairs distance matrix.
//
// CouplingView is built once from a *core.Graph describing which physical
// qubits may interact directly, and is shared read-only across the router's
// lifetime — it is never mutated by the routing core (spec §4.2, §5).
//
// Errors:
//
//	ErrGraphNil              - a nil *core.Graph was supplied.
//	ErrUnknownPhysical       - a physical index outside [0,N) was queried.
//	ErrDisconnectedTopology  - the coupling graph has more than one component.
package topology

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/dijkstra"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/prim_kruskal"
)

// ErrGraphNil indicates a nil coupling graph was supplied to NewCouplingView.
var ErrGraphNil = errors.New("topology: coupling graph is nil")

// ErrUnknownPhysical indicates a physical index outside the declared range.
var ErrUnknownPhysical = errors.New("topology: unknown physical qubit index")

// ErrDisconnectedTopology indicates the coupling graph is not a single
// connected component. Surfaced eagerly at construction time, as a
// complement to the router's lazy non-progress detector (spec §7).
var ErrDisconnectedTopology = errors.New("topology: coupling graph is disconnected")

// CouplingView is a read-only adjacency + distance view over N physical
// qubits, indexed [0,N).
type CouplingView struct {
	n     int
	adj   *matrix.AdjacencyMatrix
	cdist [][]float64
}

// NewCouplingView builds a CouplingView from an undirected *core.Graph whose
// vertex IDs are the decimal string form of physical qubit indices 0..N-1.
// It runs a one-time Kruskal connectivity check and computes all-pairs
// distances via N runs of Dijkstra over a unit-weight mirror of g.
func NewCouplingView(g *core.Graph) (*CouplingView, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	am, err := matrix.NewAdjacencyMatrix(g, matrix.NewMatrixOptions(matrix.WithUndirected(), matrix.WithUnweighted()))
	if err != nil {
		return nil, fmt.Errorf("topology: NewCouplingView: adjacency: %w", err)
	}

	n, err := am.VertexCount()
	if err != nil {
		return nil, fmt.Errorf("topology: NewCouplingView: %w", err)
	}

	wg, err := unitWeightMirror(g)
	if err != nil {
		return nil, fmt.Errorf("topology: NewCouplingView: %w", err)
	}

	if n > 1 {
		if _, _, err := prim_kruskal.Kruskal(wg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDisconnectedTopology, err)
		}
	}

	cdist, err := allPairsDistance(wg, am, n)
	if err != nil {
		return nil, fmt.Errorf("topology: NewCouplingView: %w", err)
	}

	return &CouplingView{n: n, adj: am, cdist: cdist}, nil
}

// NumPhysical returns N, the number of physical qubits.
func (c *CouplingView) NumPhysical() int { return c.n }

// Neighbors returns the physical qubits directly coupled to p.
func (c *CouplingView) Neighbors(p int) ([]int, error) {
	if p < 0 || p >= c.n {
		return nil, fmt.Errorf("topology: Neighbors(%d): %w", p, ErrUnknownPhysical)
	}
	ids, err := c.adj.Neighbors(vertexID(p))
	if err != nil {
		return nil, fmt.Errorf("topology: Neighbors(%d): %w", p, err)
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, physIndex(c.adj, id))
	}

	return out, nil
}

// IsEdge reports whether physical qubits p and q are directly coupled.
func (c *CouplingView) IsEdge(p, q int) (bool, error) {
	if p < 0 || p >= c.n || q < 0 || q >= c.n {
		return false, fmt.Errorf("topology: IsEdge(%d,%d): %w", p, q, ErrUnknownPhysical)
	}

	return c.cdist[p][q] == 1, nil
}

// Distance returns the precomputed shortest-path distance between p and q.
func (c *CouplingView) Distance(p, q int) (float64, error) {
	if p < 0 || p >= c.n || q < 0 || q >= c.n {
		return 0, fmt.Errorf("topology: Distance(%d,%d): %w", p, q, ErrUnknownPhysical)
	}

	return c.cdist[p][q], nil
}

func vertexID(p int) string { return fmt.Sprintf("%d", p) }

func physIndex(am *matrix.AdjacencyMatrix, id string) int {
	p, err := strconv.Atoi(id)
	if err != nil {
		return am.VertexIndex[id]
	}

	return p
}

// unitWeightMirror builds a weighted undirected copy of g, one edge per
// unique unordered pair, weight 1 — the shape dijkstra.Dijkstra and
// prim_kruskal.Kruskal both require.
func unitWeightMirror(g *core.Graph) (*core.Graph, error) {
	wg := core.NewGraph(core.WithWeighted())
	for _, v := range g.Vertices() {
		if err := wg.AddVertex(v); err != nil {
			return nil, err
		}
	}
	seen := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		key := [2]string{e.From, e.To}
		if e.From > e.To {
			key = [2]string{e.To, e.From}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := wg.AddEdge(key[0], key[1], 1); err != nil {
			return nil, err
		}
	}

	return wg, nil
}

// allPairsDistance runs Dijkstra once per physical qubit and assembles the
// dense N×N distance matrix, +Inf where no path exists.
func allPairsDistance(wg *core.Graph, am *matrix.AdjacencyMatrix, n int) ([][]float64, error) {
	cdist := make([][]float64, n)
	for i := range cdist {
		cdist[i] = make([]float64, n)
	}
	for p := 0; p < n; p++ {
		src := vertexID(p)
		dist, _, err := dijkstra.Dijkstra(wg, dijkstra.Source(src))
		if err != nil {
			return nil, fmt.Errorf("dijkstra from %s: %w", src, err)
		}
		for q := 0; q < n; q++ {
			if p == q {
				cdist[p][q] = 0

				continue
			}
			d := dist[vertexID(q)]
			if d == math.MaxInt64 {
				cdist[p][q] = math.Inf(1)

				continue
			}
			cdist[p][q] = float64(d)
		}
	}

	return cdist, nil
}
