package qsim

import (
	"math"
	"math/cmplx"
)

type transformKind uint8

const (
	flipX transformKind = iota
	flipY
	diagonal
)

/*
localTransform is the closed set of gates whose output for one stored entry
depends on that entry alone. The X and Y kinds move the entry to the key with
the target bit flipped; the diagonal kind keeps the key and multiplies the
amplitude by phase0 or phase1 according to the target bit.
*/
type localTransform struct {
	kind   transformKind
	phase0 complex128
	phase1 complex128
}

var (
	xTransform    = localTransform{kind: flipX}
	yTransform    = localTransform{kind: flipY}
	zTransform    = phaseTransform(-1)
	sTransform    = phaseTransform(1i)
	sAdjTransform = phaseTransform(-1i)
	tTransform    = phaseTransform(complex(math.Sqrt2/2, math.Sqrt2/2))
	tAdjTransform = phaseTransform(complex(math.Sqrt2/2, -math.Sqrt2/2))
)

func phaseTransform(phase complex128) localTransform {
	return localTransform{kind: diagonal, phase0: 1, phase1: phase}
}

func rzTransform(theta float64) localTransform {
	return localTransform{
		kind:   diagonal,
		phase0: cmplx.Exp(complex(0, -theta/2)),
		phase1: cmplx.Exp(complex(0, theta/2)),
	}
}

func (lt localTransform) apply(k Index, v complex128, target uint) (Index, complex128) {
	switch lt.kind {
	case flipX:
		return k.Flip(target), v
	case flipY:
		k = k.Flip(target)
		if k.Bit(target) {
			return k, v * 1i
		}
		return k, v * -1i
	default:
		if k.Bit(target) {
			return k, v * lt.phase1
		}
		return k, v * lt.phase0
	}
}

/*
applyLocal runs lt over every stored entry whose control bits are all set.
Entries failing the control predicate pass through. Diagonal transforms
update the store in place; flips rebuild it, which is safe because a flip is
a bijection on keys and never merges two entries.
*/
func (sim *Simulator) applyLocal(op string, ctls []int, target int, lt localTransform) error {
	t, locs, err := sim.resolve(op, ctls, target)
	if err != nil {
		return err
	}

	sim.applyLocalAt(locs, t, lt)
	return nil
}

func (sim *Simulator) applyLocalAt(locs []uint, t uint, lt localTransform) {
	st := sim.state

	if lt.kind == diagonal {
		for k, v := range st.amps {
			if !k.HasAll(locs) {
				continue
			}
			if _, nv := lt.apply(k, v, t); st.nearlyZero(nv) {
				delete(st.amps, k)
			} else {
				st.amps[k] = nv
			}
		}
	} else {
		next := make(map[Index]complex128, len(st.amps))
		for k, v := range st.amps {
			if k.HasAll(locs) {
				k, v = lt.apply(k, v, t)
			}
			put(next, k, v, st.epsilon)
		}
		st.amps = next
	}

	sim.metrics.recordGate(st.Len())
}

// X applies the Pauli-X gate.
func (sim *Simulator) X(target int) error {
	return sim.applyLocal("x", nil, target, xTransform)
}

// MCX applies X to target when every control is 1.
func (sim *Simulator) MCX(ctls []int, target int) error {
	return sim.applyLocal("mcx", ctls, target, xTransform)
}

// Y applies the Pauli-Y gate.
func (sim *Simulator) Y(target int) error {
	return sim.applyLocal("y", nil, target, yTransform)
}

// MCY applies Y to target when every control is 1.
func (sim *Simulator) MCY(ctls []int, target int) error {
	return sim.applyLocal("mcy", ctls, target, yTransform)
}

// Z applies the Pauli-Z gate.
func (sim *Simulator) Z(target int) error {
	return sim.applyLocal("z", nil, target, zTransform)
}

// MCZ applies Z to target when every control is 1.
func (sim *Simulator) MCZ(ctls []int, target int) error {
	return sim.applyLocal("mcz", ctls, target, zTransform)
}

// S applies the phase gate diag(1, i).
func (sim *Simulator) S(target int) error {
	return sim.applyLocal("s", nil, target, sTransform)
}

// MCS applies S to target when every control is 1.
func (sim *Simulator) MCS(ctls []int, target int) error {
	return sim.applyLocal("mcs", ctls, target, sTransform)
}

// SAdj applies the adjoint of S.
func (sim *Simulator) SAdj(target int) error {
	return sim.applyLocal("sadj", nil, target, sAdjTransform)
}

// MCSAdj applies SAdj to target when every control is 1.
func (sim *Simulator) MCSAdj(ctls []int, target int) error {
	return sim.applyLocal("mcsadj", ctls, target, sAdjTransform)
}

// T applies diag(1, e^{iπ/4}).
func (sim *Simulator) T(target int) error {
	return sim.applyLocal("t", nil, target, tTransform)
}

// MCT applies T to target when every control is 1.
func (sim *Simulator) MCT(ctls []int, target int) error {
	return sim.applyLocal("mct", ctls, target, tTransform)
}

// TAdj applies the adjoint of T.
func (sim *Simulator) TAdj(target int) error {
	return sim.applyLocal("tadj", nil, target, tAdjTransform)
}

// MCTAdj applies TAdj to target when every control is 1.
func (sim *Simulator) MCTAdj(ctls []int, target int) error {
	return sim.applyLocal("mctadj", ctls, target, tAdjTransform)
}

// Rz rotates target about the Z axis by theta radians.
func (sim *Simulator) Rz(theta float64, target int) error {
	return sim.applyLocal("rz", nil, target, rzTransform(theta))
}

// MCRz applies Rz to target when every control is 1.
func (sim *Simulator) MCRz(ctls []int, theta float64, target int) error {
	return sim.applyLocal("mcrz", ctls, target, rzTransform(theta))
}

// Phase multiplies the |1⟩ component of target by phase.
func (sim *Simulator) Phase(phase complex128, target int) error {
	return sim.applyLocal("phase", nil, target, phaseTransform(phase))
}

// MCPhase applies Phase to target when every control is 1.
func (sim *Simulator) MCPhase(ctls []int, phase complex128, target int) error {
	return sim.applyLocal("mcphase", ctls, target, phaseTransform(phase))
}
