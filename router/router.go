// Package router implements the SABRE driver loop: drain executable gates,
// extend the front layer, generate SWAP candidates, score them, apply the
// best, and update decay — until the front layer drains (spec §4.8).
//
// Router owns all mutable search state (Layout, decay vector, front layer,
// applied-gate set, output buffer, step counter); DagView and CouplingView
// are shared read-only collaborators for the call's lifetime (spec §3, §5).
//
// Errors:
//
//	Router.Route returns sabreerr sentinels for every fatal condition named
//	in spec §7: ErrInvalidArity, ErrDisconnectedCoupling,
//	ErrEmptySwapCandidates, ErrLayoutInvariantViolation.
package router

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qroute/circuit"
	"github.com/katalvlaran/qroute/frontlayer"
	"github.com/katalvlaran/qroute/layout"
	"github.com/katalvlaran/qroute/lookahead"
	"github.com/katalvlaran/qroute/routerrand"
	"github.com/katalvlaran/qroute/sabreerr"
	"github.com/katalvlaran/qroute/scorer"
	"github.com/katalvlaran/qroute/swapgen"
	"github.com/katalvlaran/qroute/topology"
)

// DefaultDecayRate is DECAY_RATE from spec §4.8.
const DefaultDecayRate = 0.001

// DefaultDecayResetInterval is DECAY_RESET_INTERVAL from spec §4.8.
const DefaultDecayResetInterval = 5

// nonProgressEpsilon is the strict-decrease tolerance used by the
// disconnected-coupling detector; H1 is a sum of nonnegative doubles, so a
// tiny epsilon absorbs floating point noise without masking real progress.
const nonProgressEpsilon = 1e-12

// Operation is a mapped output record: a gate (or an inserted SWAP)
// rewritten to physical qubit arguments.
type Operation struct {
	Node   circuit.NodeID // zero for synthetic SWAP operations
	Op     string
	Qargs  []int // physical qubit indices, in original order for gates
	IsSwap bool
}

// Router drives one forward SABRE sweep over a single circuit.
type Router struct {
	dag       *circuit.DAG
	cv        *topology.CouplingView
	heuristic scorer.Heuristic
	chooser   routerrand.Chooser

	layout  *layout.Layout
	decay   []float64
	front   *frontlayer.FrontLayer
	applied map[circuit.NodeID]bool
	output  []Operation
	step    int

	decayRate                   float64
	decayResetInterval          int
	extendedSetSize             int
	maxIterationsWithoutProgress int
}

// New constructs a Router. initialLayout is mutated in place over the
// course of Route; callers that need the pre-routing layout preserved
// should pass initialLayout.Clone().
func New(
	dag *circuit.DAG,
	cv *topology.CouplingView,
	initialLayout *layout.Layout,
	heuristic scorer.Heuristic,
	chooser routerrand.Chooser,
	opts ...Option,
) *Router {
	n := cv.NumPhysical()
	decay := make([]float64, n)
	for i := range decay {
		decay[i] = 1.0
	}

	r := &Router{
		dag:                 dag,
		cv:                  cv,
		heuristic:           heuristic,
		chooser:             chooser,
		layout:              initialLayout,
		decay:               decay,
		front:               frontlayer.New(dag.Roots()...),
		applied:             make(map[circuit.NodeID]bool),
		decayRate:           DefaultDecayRate,
		decayResetInterval:  DefaultDecayResetInterval,
		extendedSetSize:     lookahead.DefaultCapacity,
		maxIterationsWithoutProgress: 10 * n,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxIterationsWithoutProgress <= 0 {
		r.maxIterationsWithoutProgress = 10 * n
	}

	return r
}

// Route runs the driver loop to completion and returns the mapped
// operation sequence and the final layout.
func (r *Router) Route() ([]Operation, *layout.Layout, error) {
	bestH1 := -1.0 // sentinel: no swap iteration observed yet
	noProgress := 0

	for !r.front.IsEmpty() {
		drained, err := r.drainExecutable()
		if err != nil {
			return nil, nil, err
		}
		if drained {
			continue
		}

		if err := r.swapIteration(&bestH1, &noProgress); err != nil {
			return nil, nil, err
		}
	}

	return r.output, r.layout, nil
}

// drainExecutable scans the front layer once, emitting every immediately
// executable node. Returns true if it drained at least one node (in which
// case the caller must re-scan from scratch rather than fall through to
// swap selection, per spec §4.8 step 1).
func (r *Router) drainExecutable() (bool, error) {
	var drainedAny bool

	for _, id := range append([]circuit.NodeID(nil), r.front.IDs()...) {
		arity, err := r.dag.Arity(id)
		if err != nil {
			return false, fmt.Errorf("router: drainExecutable: %w", err)
		}
		if arity > 2 {
			return false, fmt.Errorf("%w: node %d has arity %d", sabreerr.ErrInvalidArity, id, arity)
		}

		executable, err := r.isExecutable(id, arity)
		if err != nil {
			return false, err
		}
		if !executable {
			continue
		}

		if err := r.emit(id); err != nil {
			return false, err
		}
		drainedAny = true
	}

	if drainedAny {
		r.resetDecay()
	}

	return drainedAny, nil
}

// isExecutable reports whether node id can be emitted under the current
// layout: single-qubit nodes always are; two-qubit nodes require their
// logical qargs to map to adjacent physical qubits.
func (r *Router) isExecutable(id circuit.NodeID, arity int) (bool, error) {
	if arity <= 1 {
		return true, nil
	}
	qargs, err := r.dag.Qargs(id)
	if err != nil {
		return false, fmt.Errorf("router: isExecutable: %w", err)
	}
	p0, err := r.layout.PhysOf(qargs[0])
	if err != nil {
		return false, fmt.Errorf("router: isExecutable: %w", err)
	}
	p1, err := r.layout.PhysOf(qargs[1])
	if err != nil {
		return false, fmt.Errorf("router: isExecutable: %w", err)
	}

	return r.cv.IsEdge(p0, p1)
}

// emit rewrites id's qargs to physical, appends it to the output buffer,
// removes it from the front layer, marks it applied, and admits any
// successor now fully unblocked.
func (r *Router) emit(id circuit.NodeID) error {
	node, err := r.dag.Node(id)
	if err != nil {
		return fmt.Errorf("router: emit: %w", err)
	}

	phys := make([]int, len(node.Qargs))
	for i, q := range node.Qargs {
		p, err := r.layout.PhysOf(q)
		if err != nil {
			return fmt.Errorf("router: emit: %w", err)
		}
		phys[i] = p
	}
	r.output = append(r.output, Operation{Node: id, Op: node.Op, Qargs: phys})

	r.front.Remove(id)
	r.applied[id] = true

	successors, err := r.dag.OperationSuccessors(id)
	if err != nil {
		return fmt.Errorf("router: emit: %w", err)
	}
	for _, succ := range successors {
		if r.front.Contains(succ) {
			continue
		}
		preds, err := r.dag.OperationPredecessors(succ)
		if err != nil {
			return fmt.Errorf("router: emit: %w", err)
		}
		if r.allApplied(preds) {
			if err := r.front.PushBack(succ); err != nil {
				return fmt.Errorf("router: emit: %w", err)
			}
		}
	}

	return nil
}

func (r *Router) allApplied(ids []circuit.NodeID) bool {
	for _, id := range ids {
		if !r.applied[id] {
			return false
		}
	}

	return true
}

// swapIteration performs one full swap-selection-and-apply cycle: build the
// extended set, generate candidates, score and select the best, apply it,
// and update decay and the non-progress detector.
func (r *Router) swapIteration(bestH1 *float64, noProgress *int) error {
	extended := lookahead.Build(r.dag, r.front, r.extendedSetSize)
	candidates, err := swapgen.Generate(r.dag, r.front, r.layout, r.cv)
	if err != nil {
		return fmt.Errorf("router: swapIteration: %w", err)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%w: front layer size %d", sabreerr.ErrEmptySwapCandidates, r.front.Size())
	}

	minH1, chosen, err := r.selectSwap(candidates, extended)
	if err != nil {
		return err
	}

	if err := r.checkProgress(minH1, bestH1, noProgress); err != nil {
		return err
	}

	if err := r.applySwap(chosen); err != nil {
		return err
	}

	return nil
}

// selectSwap scores every candidate, collects the tied minimum-score set,
// sorts it ascending by (a,b), and draws one uniformly via the injected
// Chooser. It also returns the minimum raw H1 among all trial layouts
// (independent of the configured heuristic), used by the non-progress
// detector.
func (r *Router) selectSwap(candidates []swapgen.Swap, extended []circuit.NodeID) (float64, swapgen.Swap, error) {
	front := r.front.IDs()
	scores := make([]float64, len(candidates))
	minH1 := -1.0

	for i, cand := range candidates {
		trial := r.layout.Clone()
		pa, err := trial.PhysOf(cand.A)
		if err != nil {
			return 0, swapgen.Swap{}, fmt.Errorf("router: selectSwap: %w", err)
		}
		pb, err := trial.PhysOf(cand.B)
		if err != nil {
			return 0, swapgen.Swap{}, fmt.Errorf("router: selectSwap: %w", err)
		}
		if err := trial.Swap(pa, pb); err != nil {
			return 0, swapgen.Swap{}, fmt.Errorf("router: selectSwap: %w", err)
		}

		h1, err := scorer.SumDistance(r.cv, trial, r.dag, front)
		if err != nil {
			return 0, swapgen.Swap{}, fmt.Errorf("router: selectSwap: %w", err)
		}
		if minH1 < 0 || h1 < minH1 {
			minH1 = h1
		}

		score, err := scorer.Score(r.heuristic, r.cv, trial, r.dag, front, extended, r.decay, cand.A, cand.B)
		if err != nil {
			return 0, swapgen.Swap{}, fmt.Errorf("router: selectSwap: %w", err)
		}
		scores[i] = score
	}

	min := scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
	}

	var tied []swapgen.Swap
	for i, s := range scores {
		if s == min {
			tied = append(tied, candidates[i])
		}
	}
	sort.Slice(tied, func(i, j int) bool {
		if tied[i].A != tied[j].A {
			return tied[i].A < tied[j].A
		}

		return tied[i].B < tied[j].B
	})

	pick := r.chooser.Choose(len(tied))

	return minH1, tied[pick], nil
}

// checkProgress implements spec §7's DisconnectedCoupling detection: if the
// minimum achievable H1 fails to strictly decrease for
// maxIterationsWithoutProgress consecutive swap iterations, the coupling
// graph cannot connect some pending pair and routing is aborted.
func (r *Router) checkProgress(minH1 float64, bestH1 *float64, noProgress *int) error {
	if *bestH1 < 0 || minH1 < *bestH1-nonProgressEpsilon {
		*bestH1 = minH1
		*noProgress = 0

		return nil
	}
	*noProgress++
	if *noProgress >= r.maxIterationsWithoutProgress {
		return fmt.Errorf("%w: no H1 improvement in %d iterations", sabreerr.ErrDisconnectedCoupling, *noProgress)
	}

	return nil
}

// applySwap emits the chosen SWAP into the output buffer with physical
// qargs, applies it to the live layout, and advances decay bookkeeping.
func (r *Router) applySwap(sw swapgen.Swap) error {
	pa, err := r.layout.PhysOf(sw.A)
	if err != nil {
		return fmt.Errorf("router: applySwap: %w", err)
	}
	pb, err := r.layout.PhysOf(sw.B)
	if err != nil {
		return fmt.Errorf("router: applySwap: %w", err)
	}

	r.output = append(r.output, Operation{Op: "swap", Qargs: []int{pa, pb}, IsSwap: true})

	if err := r.layout.Swap(pa, pb); err != nil {
		return fmt.Errorf("%w: %v", sabreerr.ErrLayoutInvariantViolation, err)
	}
	r.step++

	if r.step%r.decayResetInterval == 0 {
		r.resetDecay()
	} else {
		r.decay[sw.A] += r.decayRate
		r.decay[sw.B] += r.decayRate
	}

	return nil
}

func (r *Router) resetDecay() {
	for i := range r.decay {
		r.decay[i] = 1.0
	}
}
