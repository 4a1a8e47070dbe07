// Package qroute implements a SABRE-style heuristic qubit-routing pass for
// quantum circuit compilation — rewriting a logical circuit's two-qubit
// gates into a sequence legal under a physical coupling graph by inserting
// SWAP gates, guided by a decay-penalized lookahead heuristic.
//
// The routing core is built from:
//
//	layout     - logical<->physical qubit bijection
//	topology   - coupling graph + all-pairs distance matrix
//	circuit    - gate DAG with layer-ready dependency tracking
//	frontlayer - the ready-gate frontier the router schedules from
//	lookahead  - bounded extended-set lookahead beyond the front layer
//	swapgen    - SWAP candidate enumeration over the coupling edges
//	scorer     - basic / lookahead / decay heuristic scoring
//	router     - the driver loop tying every collaborator together
//	decompose  - a sibling single-qubit SU(2) Euler-decomposition module
//
// Design notes:
//
//   - Deterministic given a seed - all tie-breaking goes through a single
//     injected routerrand.Chooser, never the global math/rand source.
//   - Sentinel errors throughout (sabreerr, plus package-local sentinels)
//     matched with errors.Is, never by string comparison.
//   - Thin collaborators, composed explicitly by router.Router rather than
//     threaded through global state.
//
// Under the hood, the routing core is supported by adapted graph primitives:
//
//	core/         - Graph, Vertex, Edge: backs circuit.DAG
//	matrix/       - AdjacencyMatrix: backs topology.CouplingView
//	dijkstra/     - all-pairs coupling distance (topology.cdist)
//	bfs/          - layer-walk shape grounding lookahead's successor cursor
//	prim_kruskal/ - eager coupling-connectivity check at topology construction
//	builder/      - synthesizes cmd/sabreroute's demonstration coupling graph
//
// See SPEC_FULL.md and DESIGN.md for the full module map and the grounding
// ledger tying each package back to its source material.
package qroute
