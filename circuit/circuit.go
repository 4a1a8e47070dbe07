// Package circuit implements a read-only-to-the-router gate dependency DAG,
// built on core.Graph, and the BFS-successor cursor lookahead depends on.
//
// A DAG's vertex IDs are the decimal string form of each gate's NodeID, kept
// in a directed, multi-edge-enabled core.Graph (parallel dependency edges
// between the same two nodes are legal and harmless). Node metadata —
// operation name, logical qargs, and opaque condition payload — is kept
// alongside the graph rather than inside core.Vertex.Metadata, so the core
// package stays free of any domain-specific shape.
//
// Errors:
//
//	ErrUnknownNode   - a NodeID was not registered via AddNode.
//	ErrDuplicateNode - AddNode was called twice for the same NodeID.
package circuit

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/qroute/core"
)

// ErrUnknownNode indicates a NodeID absent from the DAG.
var ErrUnknownNode = errors.New("circuit: unknown node id")

// ErrDuplicateNode indicates AddNode was called twice with the same NodeID.
var ErrDuplicateNode = errors.New("circuit: duplicate node id")

// NodeID stably identifies a gate node.
type NodeID uint64

// Node carries a gate's operation descriptor: its name, its ordered logical
// qubit arguments, and an opaque condition payload passed through unchanged.
type Node struct {
	ID        NodeID
	Op        string
	Qargs     []int
	Condition interface{}
}

// Arity is the number of logical qubit arguments (1 or 2 for the routing
// core; the DAG itself does not reject wider arity — that is the router's
// ErrInvalidArity check against the front layer, spec §7).
func (n *Node) Arity() int { return len(n.Qargs) }

// DAG is a directed acyclic graph of gate nodes with data-dependence edges.
type DAG struct {
	g     *core.Graph
	nodes map[NodeID]*Node
}

// NewDAG returns an empty gate dependency DAG.
func NewDAG() *DAG {
	return &DAG{
		g:     core.NewGraph(core.WithDirected(true), core.WithMultiEdges()),
		nodes: make(map[NodeID]*Node),
	}
}

// AddNode registers a gate node. Returns ErrDuplicateNode if id is already
// present.
func (d *DAG) AddNode(id NodeID, op string, qargs []int, condition interface{}) error {
	if _, exists := d.nodes[id]; exists {
		return fmt.Errorf("circuit: AddNode(%d): %w", id, ErrDuplicateNode)
	}
	vid := vertexID(id)
	if err := d.g.AddVertex(vid); err != nil {
		return fmt.Errorf("circuit: AddNode(%d): %w", id, err)
	}
	d.nodes[id] = &Node{ID: id, Op: op, Qargs: append([]int(nil), qargs...), Condition: condition}

	return nil
}

// AddDependency records that successor depends on predecessor (predecessor
// must be emitted first).
func (d *DAG) AddDependency(predecessor, successor NodeID) error {
	if _, ok := d.nodes[predecessor]; !ok {
		return fmt.Errorf("circuit: AddDependency: %w: %d", ErrUnknownNode, predecessor)
	}
	if _, ok := d.nodes[successor]; !ok {
		return fmt.Errorf("circuit: AddDependency: %w: %d", ErrUnknownNode, successor)
	}
	if _, err := d.g.AddEdge(vertexID(predecessor), vertexID(successor), 0); err != nil {
		return fmt.Errorf("circuit: AddDependency(%d->%d): %w", predecessor, successor, err)
	}

	return nil
}

// Node returns the gate node registered under id.
func (d *DAG) Node(id NodeID) (*Node, error) {
	n, ok := d.nodes[id]
	if !ok {
		return nil, fmt.Errorf("circuit: Node(%d): %w", id, ErrUnknownNode)
	}

	return n, nil
}

// Qargs returns the logical qubit arguments of node id.
func (d *DAG) Qargs(id NodeID) ([]int, error) {
	n, err := d.Node(id)
	if err != nil {
		return nil, err
	}

	return n.Qargs, nil
}

// Arity returns the number of logical qubit arguments of node id.
func (d *DAG) Arity(id NodeID) (int, error) {
	n, err := d.Node(id)
	if err != nil {
		return 0, err
	}

	return n.Arity(), nil
}

// Roots returns every node with no operation predecessors, in ascending
// NodeID order (a stable, arbitrary-but-deterministic seed order for the
// initial front layer).
func (d *DAG) Roots() []NodeID {
	var roots []NodeID
	for id := range d.nodes {
		preds, _ := d.OperationPredecessors(id)
		if len(preds) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	return roots
}

// OperationPredecessors returns id's direct dependency predecessors, sorted
// ascending.
func (d *DAG) OperationPredecessors(id NodeID) ([]NodeID, error) {
	if _, ok := d.nodes[id]; !ok {
		return nil, fmt.Errorf("circuit: OperationPredecessors(%d): %w", id, ErrUnknownNode)
	}
	var preds []NodeID
	for _, e := range d.g.Edges() {
		if e.To == vertexID(id) {
			preds = append(preds, mustNodeID(e.From))
		}
	}
	sort.Slice(preds, func(i, j int) bool { return preds[i] < preds[j] })

	return dedupe(preds), nil
}

// OperationSuccessors returns id's direct dependents, sorted ascending.
func (d *DAG) OperationSuccessors(id NodeID) ([]NodeID, error) {
	if _, ok := d.nodes[id]; !ok {
		return nil, fmt.Errorf("circuit: OperationSuccessors(%d): %w", id, ErrUnknownNode)
	}
	succIDs, err := d.g.NeighborIDs(vertexID(id))
	if err != nil {
		return nil, fmt.Errorf("circuit: OperationSuccessors(%d): %w", id, err)
	}
	out := make([]NodeID, 0, len(succIDs))
	for _, v := range succIDs {
		out = append(out, mustNodeID(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

func dedupe(ids []NodeID) []NodeID {
	out := ids[:0]
	var last NodeID
	for i, id := range ids {
		if i == 0 || id != last {
			out = append(out, id)
		}
		last = id
	}

	return out
}

func vertexID(id NodeID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func mustNodeID(vid string) NodeID {
	n, err := strconv.ParseUint(vid, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("circuit: vertex id %q is not a valid NodeID", vid))
	}

	return NodeID(n)
}
