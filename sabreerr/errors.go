// Package sabreerr defines the sentinel error taxonomy shared by the
// routing core and its collaborators.
//
// Error policy (mirrors matrix/builder across the pack):
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites wrap with %w to attach context.
package sabreerr

import "errors"

// ErrInvalidArity indicates a front-layer node has arity greater than 2.
// Fatal; reported to the caller.
var ErrInvalidArity = errors.New("sabreerr: gate node arity exceeds 2")

// ErrDisconnectedCoupling indicates that no SWAP candidate can reduce the
// pairwise distance for some front-layer pair because the two logical
// qubits live in disconnected components of the coupling graph. Fatal.
var ErrDisconnectedCoupling = errors.New("sabreerr: coupling graph disconnected for pending pair")

// ErrEmptySwapCandidates indicates the front layer is nonempty, no gate is
// executable, and no swap candidate could be generated. Fatal.
var ErrEmptySwapCandidates = errors.New("sabreerr: no swap candidates for nonempty front layer")

// ErrLayoutInvariantViolation indicates an internal consistency failure of
// the logical/physical bijection. Fatal; indicates a bug.
var ErrLayoutInvariantViolation = errors.New("sabreerr: layout bijection invariant violated")
