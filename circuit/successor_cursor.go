package circuit

// SuccessorCursor is a restartable, one-layer-at-a-time walk over a node's
// BFS successors, filtered to two-qubit operation nodes — the lazy sequence
// spec §4.3's bfs_successors(node) describes and §9's "fixed-size ring of
// cursors" design note replaces coroutine-style generators with.
//
// Traversal advances through successors of every arity (so it can walk past
// single-qubit gates to reach the next two-qubit gate), but each call to
// Next only reports the two-qubit nodes discovered at that layer. An empty
// yielded layer is a valid, non-terminal result (spec §9's resolution of the
// "empty layer" open question) — only an empty frontier ends the sequence.
type SuccessorCursor struct {
	dag      *DAG
	frontier []NodeID
	visited  map[NodeID]bool
}

// BFSSuccessors returns a cursor seeded at start's direct successors.
func (d *DAG) BFSSuccessors(start NodeID) *SuccessorCursor {
	visited := map[NodeID]bool{start: true}
	first, _ := d.OperationSuccessors(start)
	frontier := make([]NodeID, 0, len(first))
	for _, id := range first {
		if !visited[id] {
			visited[id] = true
			frontier = append(frontier, id)
		}
	}

	return &SuccessorCursor{dag: d, frontier: frontier, visited: visited}
}

// Next advances one BFS layer. It returns the two-qubit operation nodes
// discovered in that layer and true, or (nil, false) once the frontier is
// exhausted.
func (c *SuccessorCursor) Next() ([]NodeID, bool) {
	if len(c.frontier) == 0 {
		return nil, false
	}

	current := c.frontier
	var nextFrontier []NodeID
	var twoQubit []NodeID
	for _, id := range current {
		arity, err := c.dag.Arity(id)
		if err == nil && arity == 2 {
			twoQubit = append(twoQubit, id)
		}
		succ, err := c.dag.OperationSuccessors(id)
		if err != nil {
			continue
		}
		for _, s := range succ {
			if !c.visited[s] {
				c.visited[s] = true
				nextFrontier = append(nextFrontier, s)
			}
		}
	}
	c.frontier = nextFrontier

	return twoQubit, true
}
