package qsim

import "container/heap"

// idHeap is a min-heap of released identifiers below Simulator.next.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

/*
Allocate adds a qubit in the |0⟩ state and returns its identifier, the
smallest non-negative integer not currently live. The new qubit takes the
next internal location, so locations stay the contiguous range [0, n).
Allocating into an empty simulator seeds the store with the ground state.
*/
func (sim *Simulator) Allocate() int {
	if len(sim.owners) == 0 {
		sim.state.reset()
		sim.free = sim.free[:0]
		sim.next = 0
	}

	var id int
	if sim.free.Len() > 0 {
		id = heap.Pop(&sim.free).(int)
	} else {
		id = sim.next
		sim.next++
	}

	loc := len(sim.owners)
	sim.ids[id] = loc
	sim.owners = append(sim.owners, id)

	sim.metrics.Allocations++
	sim.metrics.observe(sim.state.Len())
	sim.logger.Debug("allocate", "id", id, "loc", loc)
	return id
}

/*
Release traces out the qubit with the given identifier. The qubit is first
moved to the last location, then measured there so the store collapses onto
one outcome for that bit. The outcome itself is discarded: the bit is cleared
from every surviving key and the identifier stops being live.
*/
func (sim *Simulator) Release(id int) error {
	loc, err := sim.locate("release", id)
	if err != nil {
		return err
	}

	last := uint(len(sim.owners) - 1)
	if loc != last {
		sim.state.swapLocations(loc, last)
		sim.swapOwners(loc, last)
	}

	outcome := sim.measureAt(last)

	delete(sim.ids, id)
	sim.owners = sim.owners[:last]
	heap.Push(&sim.free, id)

	// The collapse left bit `last` equal to outcome in every key.
	if outcome {
		sim.state.clearBit(last)
	}

	sim.metrics.Releases++
	sim.logger.Debug("release", "id", id, "loc", loc, "outcome", outcome, "entries", sim.state.Len())
	return nil
}

// SwapQubitIDs exchanges the locations of two qubits without touching the store.
func (sim *Simulator) SwapQubitIDs(a, b int) error {
	la, err := sim.locate("swap_qubit_ids", a)
	if err != nil {
		return err
	}

	lb, err := sim.locate("swap_qubit_ids", b)
	if err != nil {
		return err
	}

	sim.swapOwners(la, lb)
	return nil
}

// swapOwners exchanges which identifiers occupy locations a and b.
func (sim *Simulator) swapOwners(a, b uint) {
	ida, idb := sim.owners[a], sim.owners[b]
	sim.owners[a], sim.owners[b] = idb, ida
	sim.ids[ida], sim.ids[idb] = int(b), int(a)
}
