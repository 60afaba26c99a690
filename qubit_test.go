package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAllocateRelease(t *testing.T) {
	Convey("Given sixteen allocated qubits", t, func() {
		sim := newTestSimulator()
		for i := 0; i < 16; i++ {
			So(sim.Allocate(), ShouldEqual, i)
		}

		Convey("Released identifiers should be reissued lowest first", func() {
			So(sim.Release(4), ShouldBeNil)
			So(sim.Release(7), ShouldBeNil)
			So(sim.Release(12), ShouldBeNil)
			So(sim.QubitCount(), ShouldEqual, 13)
			checkInvariants(sim)

			So(sim.Allocate(), ShouldEqual, 4)
			So(sim.Allocate(), ShouldEqual, 7)
			So(sim.Allocate(), ShouldEqual, 12)
			So(sim.Allocate(), ShouldEqual, 16)
		})

		Convey("Locations should stay contiguous after releases", func() {
			So(sim.Release(0), ShouldBeNil)
			So(sim.Release(9), ShouldBeNil)

			seen := make(map[int]bool)
			for id, loc := range sim.ids {
				So(loc, ShouldBeBetweenOrEqual, 0, sim.QubitCount()-1)
				So(sim.owners[loc], ShouldEqual, id)
				seen[loc] = true
			}
			So(len(seen), ShouldEqual, 14)
		})

		Convey("Releasing an unknown qubit should fail without side effects", func() {
			So(sim.Release(3), ShouldBeNil)
			err := sim.Release(3)

			So(errors.Is(err, ErrUsage), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "unable to find qubit with id 3")
			So(sim.QubitCount(), ShouldEqual, 15)
		})

		Convey("Releasing every qubit and allocating again should start from the ground state", func() {
			So(sim.X(5), ShouldBeNil)
			So(sim.H(6), ShouldBeNil)
			for i := 15; i >= 0; i-- {
				So(sim.Release(i), ShouldBeNil)
			}
			So(sim.QubitCount(), ShouldEqual, 0)

			So(sim.Allocate(), ShouldEqual, 0)
			So(sim.StateSize(), ShouldEqual, 1)
			So(sim.Entries()[0].Amplitude, ShouldEqual, complex(1, 0))
		})
	})
}

func TestReleaseTracesOut(t *testing.T) {
	Convey("Given an entangled pair", t, func() {
		sim := newTestSimulator()
		q0 := sim.Allocate()
		q1 := sim.Allocate()
		q2 := sim.Allocate()
		So(sim.H(q0), ShouldBeNil)
		So(sim.MCX([]int{q0}, q1), ShouldBeNil)

		Convey("Releasing one half should leave the other in a definite state", func() {
			So(sim.Release(q0), ShouldBeNil)
			checkInvariants(sim)
			So(sim.StateSize(), ShouldEqual, 1)

			p := probabilityOf(sim, q1)
			So(p == 0 || almostEqual(p, 1), ShouldBeTrue)
			So(probabilityOf(sim, q2), ShouldAlmostEqual, 0.0, tolerance)
		})

		Convey("The collapse inside release should leave the vacated bit constant", func() {
			last := uint(sim.QubitCount() - 1)
			loc := uint(sim.ids[q0])
			sim.state.swapLocations(loc, last)
			sim.swapOwners(loc, last)

			outcome := sim.measureAt(last)
			for k := range sim.state.amps {
				So(k.Bit(last), ShouldEqual, outcome)
			}
		})

		Convey("Releasing a qubit in superposition should keep the rest of the register", func() {
			So(sim.H(q2), ShouldBeNil)
			So(sim.Release(q2), ShouldBeNil)
			checkInvariants(sim)
			So(sim.StateSize(), ShouldEqual, 2)
			So(probabilityOf(sim, q0, q1), ShouldAlmostEqual, 0.0, tolerance)
		})
	})
}

func TestSwapQubitIDs(t *testing.T) {
	Convey("Given two qubits with one flipped", t, func() {
		sim := newTestSimulator()
		q0 := sim.Allocate()
		q1 := sim.Allocate()
		So(sim.X(q0), ShouldBeNil)

		Convey("Swapping ids should relabel without touching the store", func() {
			before := sim.Entries()
			So(sim.SwapQubitIDs(q0, q1), ShouldBeNil)

			So(sim.Entries(), ShouldResemble, before)
			So(probabilityOf(sim, q0), ShouldAlmostEqual, 0.0, tolerance)
			So(probabilityOf(sim, q1), ShouldAlmostEqual, 1.0, tolerance)
		})

		Convey("Swapping an unknown id should fail", func() {
			err := sim.SwapQubitIDs(q0, 9)
			So(errors.Is(err, ErrUsage), ShouldBeTrue)
			So(sim.ids[q0], ShouldEqual, 0)
		})
	})
}

func almostEqual(a, b float64) bool {
	return max(a, b)-min(a, b) <= tolerance
}
