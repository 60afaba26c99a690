package qsim

import (
	"fmt"
	"io"
	"slices"

	"github.com/davecgh/go-spew/spew"
)

/*
Dump relabels the internal locations so that location i holds the i-th
smallest live identifier, then writes every stored basis state in ascending
index order, one `|index⟩: amplitude` line each. The relabeling persists;
it only permutes the basis and leaves the physical state unchanged.
*/
func (sim *Simulator) Dump(w io.Writer) error {
	sim.sortLocations()

	if sim.config.DumpIDMap {
		if err := sim.DumpIDMap(w); err != nil {
			return err
		}
	}

	for _, e := range sim.state.Entries() {
		if _, err := fmt.Fprintf(w, "|%s⟩: %v\n", e.Index, e.Amplitude); err != nil {
			return err
		}
	}
	return nil
}

var mapPrinter = spew.ConfigState{SortKeys: true}

// DumpIDMap writes the identifier to location map, keys ascending.
func (sim *Simulator) DumpIDMap(w io.Writer) error {
	_, err := mapPrinter.Fprintf(w, "MAP: %v\n", sim.ids)
	return err
}

// sortLocations moves each live identifier to the location equal to its rank.
func (sim *Simulator) sortLocations() {
	sorted := slices.Clone(sim.owners)
	slices.Sort(sorted)

	for rank, id := range sorted {
		loc := uint(sim.ids[id])
		if loc != uint(rank) {
			sim.state.swapLocations(loc, uint(rank))
			sim.swapOwners(loc, uint(rank))
		}
	}
}
