package decompose

import "fmt"

// Gate is a single basis-gate instance in a decomposition net: an RZ or RY
// rotation by Param radians, matching the 'ZYZ' basis row of
// _examples/original_source's ONE_QUBIT_EULER_BASIS_GATES table.
type Gate struct {
	Name  string // "rz" or "ry"
	Param float64
}

// GateNet is an ordered sequence of basis gates applied left to right.
type GateNet []Gate

// String renders the net as a compact human-readable sequence, e.g.
// "rz(1.571) ry(0.785) rz(-1.571)".
func (n GateNet) String() string {
	s := ""
	for i, g := range n {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s(%.3f)", g.Name, g.Param)
	}

	return s
}

// BuildZYZNet renders a's ZYZ decomposition as the three-gate net
// rz(Lambda) ry(Theta) rz(Phi) in application order, i.e. the matrix product
// RZ(Phi)*RY(Theta)*RZ(Lambda). Gates whose parameter is within tol of zero
// are omitted, so an identity or near-identity target yields a shorter (or
// empty) net rather than three redundant zero-angle rotations.
func BuildZYZNet(a Angles, tol float64) GateNet {
	var net GateNet
	if abs(a.Lambda) > tol {
		net = append(net, Gate{Name: "rz", Param: a.Lambda})
	}
	if abs(a.Theta) > tol {
		net = append(net, Gate{Name: "ry", Param: a.Theta})
	}
	if abs(a.Phi) > tol {
		net = append(net, Gate{Name: "rz", Param: a.Phi})
	}

	return net
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
