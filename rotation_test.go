package qsim

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRotationMatrices(t *testing.T) {
	Convey("Given rotation matrices", t, func() {
		theta := math.Pi / 5
		c, s := math.Cos(theta/2), math.Sin(theta/2)

		Convey("Rx should carry -i·sin on both off-diagonals", func() {
			u := rotation(theta, false)
			So(u.m00, ShouldEqual, complex(c, 0))
			So(u.m11, ShouldEqual, complex(c, 0))
			So(cmplx.Abs(u.m01-complex(0, -s)), ShouldBeLessThan, tolerance)
			So(cmplx.Abs(u.m10-complex(0, -s)), ShouldBeLessThan, tolerance)
		})

		Convey("Ry should be real and antisymmetric", func() {
			u := rotation(theta, true)
			So(cmplx.Abs(u.m01-complex(-s, 0)), ShouldBeLessThan, tolerance)
			So(cmplx.Abs(u.m10-complex(s, 0)), ShouldBeLessThan, tolerance)
		})
	})
}

func TestHadamard(t *testing.T) {
	Convey("Given a qubit in |1⟩", t, func() {
		sim := newTestSimulator()
		q := sim.Allocate()
		So(sim.X(q), ShouldBeNil)

		Convey("H should produce the minus state", func() {
			So(sim.H(q), ShouldBeNil)
			entries := sim.Entries()
			So(len(entries), ShouldEqual, 2)
			So(real(entries[0].Amplitude), ShouldAlmostEqual, math.Sqrt2/2, tolerance)
			So(real(entries[1].Amplitude), ShouldAlmostEqual, -math.Sqrt2/2, tolerance)
			checkInvariants(sim)

			Convey("And a second H should return to |1⟩", func() {
				So(sim.H(q), ShouldBeNil)
				So(sim.StateSize(), ShouldEqual, 1)
				So(sim.Entries()[0].Index == NewIndex(1), ShouldBeTrue)
				So(real(sim.Entries()[0].Amplitude), ShouldAlmostEqual, 1.0, tolerance)
			})
		})
	})
}

func TestCrossEntryEquivalence(t *testing.T) {
	Convey("Pair-mixing gates should be undone by their inverses", t, func() {
		Convey("H", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.H(qs[0]), ShouldBeNil) },
				func(sim *Simulator, qs []int) { So(sim.H(qs[0]), ShouldBeNil) },
				1,
			)
		})

		Convey("H against X after Ry(π/2)", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.H(qs[0]), ShouldBeNil) },
				func(sim *Simulator, qs []int) {
					So(sim.Ry(math.Pi/2, qs[0]), ShouldBeNil)
					So(sim.X(qs[0]), ShouldBeNil)
				},
				1,
			)
		})

		Convey("Controlled H", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.MCH([]int{qs[0]}, qs[1]), ShouldBeNil) },
				func(sim *Simulator, qs []int) { So(sim.MCH([]int{qs[0]}, qs[1]), ShouldBeNil) },
				2,
			)
		})

		Convey("Rx", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.Rx(math.Pi/7, qs[0]), ShouldBeNil) },
				func(sim *Simulator, qs []int) { So(sim.Rx(-math.Pi/7, qs[0]), ShouldBeNil) },
				1,
			)
		})

		Convey("Ry", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.Ry(math.Pi/7, qs[0]), ShouldBeNil) },
				func(sim *Simulator, qs []int) { So(sim.Ry(-math.Pi/7, qs[0]), ShouldBeNil) },
				1,
			)
		})

		Convey("Controlled Rx and Ry", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) {
					So(sim.MCRx(qs[1:], 0.4, qs[0]), ShouldBeNil)
					So(sim.MCRy(qs[:1], 1.3, qs[2]), ShouldBeNil)
				},
				func(sim *Simulator, qs []int) {
					So(sim.MCRy(qs[:1], -1.3, qs[2]), ShouldBeNil)
					So(sim.MCRx(qs[1:], -0.4, qs[0]), ShouldBeNil)
				},
				3,
			)
		})

		Convey("Rx(π) reduces to X", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.Rx(math.Pi, qs[0]), ShouldBeNil) },
				func(sim *Simulator, qs []int) { So(sim.X(qs[0]), ShouldBeNil) },
				1,
			)
		})

		Convey("Ry(π) reduces to Y", func() {
			assertOperationEqualReferenced(
				func(sim *Simulator, qs []int) { So(sim.MCRy(qs[:1], math.Pi, qs[1]), ShouldBeNil) },
				func(sim *Simulator, qs []int) { So(sim.MCY(qs[:1], qs[1]), ShouldBeNil) },
				2,
			)
		})
	})
}

func TestRotationIdentity(t *testing.T) {
	Convey("Given a qubit in superposition", t, func() {
		sim := newTestSimulator()
		q := sim.Allocate()
		So(sim.H(q), ShouldBeNil)
		before := sim.Entries()

		Convey("A full turn should leave the store untouched", func() {
			So(sim.Rx(2*math.Pi, q), ShouldBeNil)
			So(sim.Ry(0, q), ShouldBeNil)
			So(sim.Entries(), ShouldResemble, before)
		})
	})
}
