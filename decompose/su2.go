// Package decompose implements a bounded Euler-angle decomposition of
// single-qubit SU(2) unitaries into a basis-gate net, with an LRU cache of
// previously-computed approximants. It is a peripheral utility: the router
// never calls into it, and it never imports the routing packages.
package decompose

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrNotUnitDeterminant indicates the supplied 2x2 matrix does not satisfy
// |A|^2 + |B|^2 == 1 within tolerance and cannot represent an SU(2) element
// in this package's canonical parametrization.
var ErrNotUnitDeterminant = errors.New("decompose: matrix is not special-unitary")

// normTolerance bounds the |A|^2+|B|^2 == 1 check in New.
const normTolerance = 1e-9

// SU2 is a special-unitary 2x2 matrix in its canonical parametrization:
//
//	[[A, B], [-conj(B), conj(A)]],  |A|^2 + |B|^2 == 1
//
// every element of SU(2) has exactly this shape, so a value pair (A, B) is
// a complete and unambiguous representation.
type SU2 struct {
	A, B complex128
}

// Identity is the SU(2) identity element.
func Identity() SU2 { return SU2{A: complex(1, 0), B: 0} }

// New validates and constructs an SU2 value from its (A, B) parameters.
func New(a, b complex128) (SU2, error) {
	if math.Abs(cmplx.Abs(a)*cmplx.Abs(a)+cmplx.Abs(b)*cmplx.Abs(b)-1) > normTolerance {
		return SU2{}, ErrNotUnitDeterminant
	}

	return SU2{A: a, B: b}, nil
}

// Dagger returns the conjugate transpose, which for SU(2) is also its
// inverse.
func (m SU2) Dagger() SU2 {
	return SU2{A: cmplx.Conj(m.A), B: -m.B}
}

// Multiply returns m*other under standard 2x2 matrix multiplication, using
// each operand's canonical [[A,B],[-conj(B),conj(A)]] expansion.
func (m SU2) Multiply(other SU2) SU2 {
	// m = [[a,b],[-conj(b),conj(a)]], other = [[c,d],[-conj(d),conj(c)]]
	a, b := m.A, m.B
	c, d := other.A, other.B

	resA := a*c - b*cmplx.Conj(d)
	resB := a*d + b*cmplx.Conj(c)

	return SU2{A: resA, B: resB}
}

// TraceFidelity returns |Tr(m.Dagger() * other)| / 2, which is 1 for
// identical elements (up to global phase) and 0 for maximally different
// ones. It is the standard closeness measure Solovay-Kitaev style search
// uses in place of an explicit operator norm.
func TraceFidelity(m, other SU2) float64 {
	prod := m.Dagger().Multiply(other)
	trace := prod.A + cmplx.Conj(prod.A) // Tr = A + conj(A) = 2*Re(A)

	return cmplx.Abs(trace) / 2
}

// Distance is the operator-norm-equivalent distance derived from
// TraceFidelity: 0 for identical elements (up to global phase), up to
// sqrt(2) for maximally distant ones.
func Distance(m, other SU2) float64 {
	fidelity := TraceFidelity(m, other)
	if fidelity > 1 {
		fidelity = 1
	}

	return math.Sqrt(2 * (1 - fidelity))
}
