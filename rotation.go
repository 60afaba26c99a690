package qsim

import (
	"math"
)

// unitary2 holds the entries of a single-qubit gate, m[row][col] with row = output bit.
type unitary2 struct {
	m00, m01 complex128
	m10, m11 complex128
}

var hadamard = unitary2{
	m00: math.Sqrt2 / 2, m01: math.Sqrt2 / 2,
	m10: math.Sqrt2 / 2, m11: -math.Sqrt2 / 2,
}

/*
rotation returns the matrix of Rx(theta), or of Ry(theta) when signFlip is
set. Both share the cos(θ/2) diagonal; Ry turns the -i·sin(θ/2) off-diagonal
real and antisymmetric.
*/
func rotation(theta float64, signFlip bool) unitary2 {
	m00 := complex(math.Cos(theta/2), 0)
	m01 := complex(0, -math.Sin(theta/2))
	m10 := m01
	if signFlip {
		m01 *= -1i
		m10 = -m01
	}
	return unitary2{m00: m00, m01: m01, m10: m10, m11: m00}
}

// H applies the Hadamard gate.
func (sim *Simulator) H(target int) error {
	return sim.MCH(nil, target)
}

// MCH applies H to target when every control is 1.
func (sim *Simulator) MCH(ctls []int, target int) error {
	t, locs, err := sim.resolve("mch", ctls, target)
	if err != nil {
		return err
	}

	sim.applyPairwise(locs, t, hadamard)
	return nil
}

// Rx rotates target about the X axis by theta radians.
func (sim *Simulator) Rx(theta float64, target int) error {
	return sim.mcRotation("rx", nil, theta, target, false)
}

// MCRx applies Rx to target when every control is 1.
func (sim *Simulator) MCRx(ctls []int, theta float64, target int) error {
	return sim.mcRotation("mcrx", ctls, theta, target, false)
}

// Ry rotates target about the Y axis by theta radians.
func (sim *Simulator) Ry(theta float64, target int) error {
	return sim.mcRotation("ry", nil, theta, target, true)
}

// MCRy applies Ry to target when every control is 1.
func (sim *Simulator) MCRy(ctls []int, theta float64, target int) error {
	return sim.mcRotation("mcry", ctls, theta, target, true)
}

/*
mcRotation applies the controlled rotation, short-circuiting the degenerate
angles. A vanishing diagonal makes the rotation a Pauli flip, run through the
cheaper local engine as Y (Ry) or X (Rx). A vanishing off-diagonal makes it
the identity and nothing is touched.
*/
func (sim *Simulator) mcRotation(op string, ctls []int, theta float64, target int, signFlip bool) error {
	t, locs, err := sim.resolve(op, ctls, target)
	if err != nil {
		return err
	}

	u := rotation(theta, signFlip)
	eps := sim.config.Epsilon

	switch {
	case nearlyZero(u.m00, eps):
		sim.logger.Debug("rotation reduces to pauli flip", "op", op, "theta", theta)
		if signFlip {
			sim.applyLocalAt(locs, t, yTransform)
		} else {
			sim.applyLocalAt(locs, t, xTransform)
		}
	case nearlyZero(u.m01, eps):
		sim.logger.Debug("rotation reduces to identity", "op", op, "theta", theta)
	default:
		sim.applyPairwise(locs, t, u)
	}

	return nil
}

/*
applyPairwise applies u to the target bit of every entry whose controls are
all set. u mixes each key with its partner differing only in the target bit,
so the new store is built from the old one:

  - with no stored partner the partner amplitude is zero, and both outputs
    come from the entry alone;
  - with a stored partner the pair is combined once, when visiting the member
    whose target bit is 0, and skipped when visiting the other.

Entries whose controls are not all set are copied across unchanged.
*/
func (sim *Simulator) applyPairwise(locs []uint, t uint, u unitary2) {
	st := sim.state
	eps := st.epsilon
	next := make(map[Index]complex128, 2*len(st.amps))

	for k, v := range st.amps {
		if !k.HasAll(locs) {
			next[k] = v
			continue
		}

		partner := k.Flip(t)
		pv, paired := st.amps[partner]

		switch {
		case !paired:
			zero, one := k, partner
			if k.Bit(t) {
				zero, one = partner, k
				put(next, zero, u.m01*v, eps)
				put(next, one, u.m11*v, eps)
			} else {
				put(next, zero, u.m00*v, eps)
				put(next, one, u.m10*v, eps)
			}
		case !k.Bit(t):
			put(next, k, u.m00*v+u.m01*pv, eps)
			put(next, partner, u.m10*v+u.m11*pv, eps)
		}
	}

	st.amps = next
	sim.metrics.recordGate(st.Len())
}
