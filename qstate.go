package qsim

import (
	"math"
	"slices"
)

/*
State is the sparse amplitude store: a map from basis index to amplitude that
holds only the basis states with a non-negligible amplitude. Keys carry no
order.

After every mutation the store is pruned (no amplitude with magnitude at or
below epsilon), normalized (squared magnitudes sum to 1) and confined to the
bit positions below the current qubit count.
*/
type State struct {
	amps    map[Index]complex128
	epsilon float64
}

func newState(epsilon float64) *State {
	return &State{
		amps:    make(map[Index]complex128),
		epsilon: epsilon,
	}
}

// reset seeds the store with the all-zero ground state.
func (st *State) reset() {
	st.amps = map[Index]complex128{{}: 1}
}

// Len returns the number of stored basis states.
func (st *State) Len() int {
	return len(st.amps)
}

// Amplitude returns the amplitude of x, zero when x is not stored.
func (st *State) Amplitude(x Index) complex128 {
	return st.amps[x]
}

// Norm returns the sum of squared magnitudes over all stored entries.
func (st *State) Norm() float64 {
	total := 0.0
	for _, v := range st.amps {
		total += normSqr(v)
	}
	return total
}

// Entries returns the stored basis states sorted by ascending index.
func (st *State) Entries() []Entry {
	entries := make([]Entry, 0, len(st.amps))
	for k, v := range st.amps {
		entries = append(entries, Entry{Index: k, Amplitude: v})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return a.Index.Cmp(b.Index)
	})
	return entries
}

func (st *State) nearlyZero(v complex128) bool {
	return nearlyZero(v, st.epsilon)
}

// put stores v at x unless it falls under the pruning threshold.
func put(amps map[Index]complex128, x Index, v complex128, epsilon float64) {
	if !nearlyZero(v, epsilon) {
		amps[x] = v
	}
}

/*
swapLocations permutes the basis so that the bits at locations a and b trade
places. Keys whose two bits agree are kept as they are, the others get both
bits flipped. The permutation is a bijection, so the entry count never changes.
*/
func (st *State) swapLocations(a, b uint) {
	if a == b {
		return
	}

	next := make(map[Index]complex128, len(st.amps))
	for k, v := range st.amps {
		if k.Bit(a) != k.Bit(b) {
			k = k.Flip(a).Flip(b)
		}
		next[k] = v
	}
	st.amps = next
}

// clearBit drops bit loc from every key. Callers guarantee loc holds the same value in all keys.
func (st *State) clearBit(loc uint) {
	next := make(map[Index]complex128, len(st.amps))
	for k, v := range st.amps {
		next[k.SetBit(loc, false)] = v
	}
	st.amps = next
}

// normalize rescales every amplitude by 1/sqrt(Norm()).
func (st *State) normalize() {
	total := st.Norm()
	if total == 0 {
		return
	}

	scale := complex(1/math.Sqrt(total), 0)
	for k, v := range st.amps {
		st.amps[k] = v * scale
	}
}
