package decompose

import (
	"math"
	"math/cmplx"
)

// Angles is a ZYZ Euler decomposition: U == RZ(Phi) * RY(Theta) * RZ(Lambda),
// following the ZYZ basis of _examples/original_source's
// OneQubitEulerDecomposer (spec §E adapts its 'ZYZ' row).
type Angles struct {
	Theta, Phi, Lambda float64
}

// DecomposeZYZ extracts the ZYZ Euler angles of an SU(2) element. Theta is
// returned in [0, pi]; Phi and Lambda are returned in (-pi, pi] but are only
// individually meaningful when Theta is not near 0 or pi (the standard
// Euler gimbal-lock ambiguity, in which only Phi+Lambda is well defined).
func DecomposeZYZ(m SU2) Angles {
	theta := 2 * math.Atan2(cmplx.Abs(m.B), cmplx.Abs(m.A))

	sumHalf := -cmplx.Phase(m.A)      // (Phi+Lambda)/2
	diffHalf := -cmplx.Phase(-m.B)    // (Phi-Lambda)/2

	phi := sumHalf + diffHalf
	lambda := sumHalf - diffHalf

	return Angles{Theta: theta, Phi: phi, Lambda: lambda}
}

// ComposeZYZ rebuilds the SU(2) element for a set of Euler angles, the
// inverse of DecomposeZYZ up to the usual gimbal-lock ambiguity.
func ComposeZYZ(a Angles) SU2 {
	half := a.Theta / 2
	sumHalf := (a.Phi + a.Lambda) / 2
	diffHalf := (a.Phi - a.Lambda) / 2

	A := cmplx.Rect(math.Cos(half), -sumHalf)
	B := -cmplx.Rect(math.Sin(half), -diffHalf)

	return SU2{A: A, B: B}
}
